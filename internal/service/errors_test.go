// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-scrims/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "invalid argument", err: invalidArgument("bad", nil), want: KindInvalidArgument},
		{name: "already exists", err: alreadyExists(MsgUsernameTaken, nil), want: KindAlreadyExists},
		{name: "not found", err: notFound(MsgUserNotFound, nil), want: KindNotFound},
		{name: "invalid credentials", err: invalidCredentials(MsgInvalidCredentials, nil), want: KindInvalidCredentials},
		{name: "internal", err: internal(errors.New("db down")), want: KindInternal},
		{name: "wrapped", err: fmt.Errorf("handler: %w", notFound(MsgTeamNotFound, nil)), want: KindNotFound},
		{name: "unclassified", err: errors.New("plain"), want: KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, MsgEmailTaken, MessageOf(alreadyExists(MsgEmailTaken, store.ErrEmailAlreadyExists)))
	assert.Equal(t, MsgInternal, MessageOf(internal(errors.New("connection reset by peer"))))
	assert.Equal(t, MsgInternal, MessageOf(errors.New("raw driver error")))
}

func TestError_ErrorAndUnwrap(t *testing.T) {
	err := alreadyExists(MsgUsernameTaken, store.ErrUsernameAlreadyExists)

	assert.Equal(t, "username already exists: username already exists", err.Error())
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
	assert.Equal(t, "owner not found", notFound(MsgOwnerNotFound, nil).Error())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "invalid argument", KindInvalidArgument.String())
	assert.Equal(t, "already exists", KindAlreadyExists.String())
	assert.Equal(t, "not found", KindNotFound.String())
	assert.Equal(t, "invalid credentials", KindInvalidCredentials.String())
	assert.Equal(t, "internal", KindInternal.String())
}

func TestFromStoreError(t *testing.T) {
	tests := []struct {
		err  error
		kind Kind
		msg  string
	}{
		{err: store.ErrUsernameAlreadyExists, kind: KindAlreadyExists, msg: MsgUsernameTaken},
		{err: fmt.Errorf("insert: %w", store.ErrEmailAlreadyExists), kind: KindAlreadyExists, msg: MsgEmailTaken},
		{err: store.ErrTeamNameAlreadyExists, kind: KindAlreadyExists, msg: MsgTeamNameTaken},
		{err: store.ErrNoUserWasFound, kind: KindNotFound, msg: MsgUserNotFound},
		{err: store.ErrNoTeamWasFound, kind: KindNotFound, msg: MsgTeamNotFound},
		{err: store.ErrExecutingQuery, kind: KindInternal, msg: MsgInternal},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			err := fromStoreError(tt.err)
			assert.Equal(t, tt.kind, KindOf(err))
			assert.Equal(t, tt.msg, MessageOf(err))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
