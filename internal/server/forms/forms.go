// Package forms parses raw login/signup request bodies into validated forms.
//
// The accepted grammar is deliberately strict: fields must appear in a fixed
// order, with no extra or missing fields, and every value must match its
// character class. Anything else is a *ParseError. Parsing is pure and does
// no I/O.
package forms

import (
	"fmt"
	"regexp"
)

// LoginForm is the validated body of a login attempt.
type LoginForm struct {
	UserName string
	Password string
	Remember bool
}

// SignupForm is the validated body of a signup attempt.
type SignupForm struct {
	UserName       string
	Password       string
	PasswordRepeat string
	Remember       bool
}

// ParseError reports a body that does not match the form grammar.
// Payload carries the offending raw input.
type ParseError struct {
	Payload string
	Reason  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse form %q: %s", e.Payload, e.Reason)
}

// Field order is part of the contract: uname, psw, (psw-repeat,) remember.
// \w in RE2 is ASCII-only, which is exactly the character class we want.
var (
	loginPattern  = regexp.MustCompile(`^uname=([A-Za-z]+)&psw=(\w*)&remember=(on|off)$`)
	signupPattern = regexp.MustCompile(`^uname=([A-Za-z]+)&psw=(\w*)&psw-repeat=(\w*)&remember=(on|off)$`)
)

// ParseLogin validates raw against the login grammar
// uname=<alpha+>&psw=<word*>&remember=(on|off).
func ParseLogin(raw []byte) (*LoginForm, error) {
	m := loginPattern.FindSubmatch(raw)
	if m == nil {
		return nil, &ParseError{Payload: string(raw), Reason: "expected uname=<letters>&psw=<word>&remember=(on|off)"}
	}
	return &LoginForm{
		UserName: string(m[1]),
		Password: string(m[2]),
		Remember: string(m[3]) == "on",
	}, nil
}

// ParseSignup validates raw against the signup grammar
// uname=<alpha+>&psw=<word*>&psw-repeat=<word*>&remember=(on|off).
func ParseSignup(raw []byte) (*SignupForm, error) {
	m := signupPattern.FindSubmatch(raw)
	if m == nil {
		return nil, &ParseError{Payload: string(raw), Reason: "expected uname=<letters>&psw=<word>&psw-repeat=<word>&remember=(on|off)"}
	}
	return &SignupForm{
		UserName:       string(m[1]),
		Password:       string(m[2]),
		PasswordRepeat: string(m[3]),
		Remember:       string(m[4]) == "on",
	}, nil
}
