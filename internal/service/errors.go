// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// Kind classifies a service failure. The transport boundary maps every kind
// to exactly one status code.
type Kind int

const (
	// KindInternal covers everything unclassified, including store failures
	// and an unreachable identity service.
	KindInternal Kind = iota
	KindInvalidArgument
	KindAlreadyExists
	KindNotFound
	KindInvalidCredentials
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindAlreadyExists:
		return "already exists"
	case KindNotFound:
		return "not found"
	case KindInvalidCredentials:
		return "invalid credentials"
	default:
		return "internal"
	}
}

// Error is the failure value returned by every service operation.
//
// Message is safe to show to the caller. Err holds the underlying cause
// and is only meant for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// NewError builds an [Error] of the given kind.
func NewError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first [Error] in err's chain, or
// [KindInternal] when there is none.
func KindOf(err error) Kind {
	var serviceErr *Error
	if errors.As(err, &serviceErr) {
		return serviceErr.Kind
	}
	return KindInternal
}

// MessageOf returns the caller-safe message of err. Internal failures never
// expose their cause.
func MessageOf(err error) string {
	var serviceErr *Error
	if errors.As(err, &serviceErr) && serviceErr.Kind != KindInternal {
		return serviceErr.Message
	}
	return MsgInternal
}

// Caller-safe messages.
const (
	MsgInternal           = "internal server error"
	MsgUsernameTaken      = "username already exists"
	MsgEmailTaken         = "email already exists"
	MsgUserNotFound       = "user not found"
	MsgInvalidCredentials = "invalid credentials"
	MsgInvalidToken       = "token is expired or invalid"
	MsgPasswordUpdated    = "password updated successfully"
	MsgTeamNameTaken      = "team name already exists"
	MsgTeamNotFound       = "team not found"
	MsgOwnerNotFound      = "owner not found"
	MsgEmptyID            = "id must not be empty"
	MsgEmptySearchQuery   = "search query must not be empty"
)

var (
	ErrEmptyTokenSignKey = errors.New("token sign key is empty")
	ErrEmptyTokenIssuer  = errors.New("token issuer is empty")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)

func invalidArgument(message string, err error) error {
	return NewError(KindInvalidArgument, message, err)
}

func alreadyExists(message string, err error) error {
	return NewError(KindAlreadyExists, message, err)
}

func notFound(message string, err error) error {
	return NewError(KindNotFound, message, err)
}

func invalidCredentials(message string, err error) error {
	return NewError(KindInvalidCredentials, message, err)
}

func internal(err error) error {
	return NewError(KindInternal, MsgInternal, err)
}
