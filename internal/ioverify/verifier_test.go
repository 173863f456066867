package ioverify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/udbtool/udb/pkg/config"
	"github.com/udbtool/udb/pkg/errcode"
)

func dbConfig() *config.DatabaseConfig {
	return &config.DatabaseConfig{
		Name:     "universal_db",
		User:     "webadmin",
		Password: "Password123!",
		Host:     "localhost",
		Port:     3306,
	}
}

func TestDSN(t *testing.T) {
	got := dsn(dbConfig(), "secret")
	assert.Equal(t,
		"webadmin:secret@tcp(localhost:3306)/universal_db?timeout=5s",
		got,
	)
}

// TestVerifyUnreachable uses a port nothing listens on; the verifier
// must convert the dial failure into a typed connectivity error.
func TestVerifyUnreachable(t *testing.T) {
	v := &verifier{
		promptPassword: func(string) (string, bool) { return "", false },
	}
	cfg := dbConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = 1 // reserved, nothing listens here

	err := v.Verify(context.Background(), cfg)
	require.Error(t, err)

	var coder errcode.Coder
	require.ErrorAs(t, err, &coder)
	assert.Equal(t, errcode.ConnectivityError, coder.Code())

	var hinter errcode.Hinter
	require.ErrorAs(t, err, &hinter)
	assert.Contains(t, hinter.Hint(), "webadmin")
}

func TestVerifyUsesPromptedPassword(t *testing.T) {
	prompted := false
	v := &verifier{
		promptPassword: func(user string) (string, bool) {
			prompted = true
			assert.Equal(t, "webadmin", user)
			return "other", true
		},
	}
	cfg := dbConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = 1

	_ = v.Verify(context.Background(), cfg)
	assert.True(t, prompted, "the prompt runs exactly once per verify")
}
