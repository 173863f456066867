package ioprovision_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/udbtool/udb/internal/ioprovision"
	"github.com/udbtool/udb/pkg/config"
	"github.com/udbtool/udb/pkg/errcode"
	"github.com/udbtool/udb/pkg/lifecycle"
)

type executedBatch struct {
	batch      string
	useNamedDB bool
}

type fakeSQL struct {
	batches []executedBatch
	err     error
}

func (f *fakeSQL) Execute(
	_ context.Context,
	batch string,
	_ *config.DatabaseConfig,
	useNamedDB bool,
	_ lifecycle.AuthOutcome,
) error {
	f.batches = append(f.batches, executedBatch{batch, useNamedDB})
	return f.err
}

func dbConfig() *config.DatabaseConfig {
	return &config.DatabaseConfig{
		Name:     "universal_db",
		User:     "webadmin",
		Password: "Password123!",
		Host:     "localhost",
		Port:     3306,
	}
}

func auth() lifecycle.AuthOutcome {
	return lifecycle.AuthOutcome{
		Strategy: lifecycle.AuthSocket, Succeeded: true,
	}
}

func TestCreateDatabase(t *testing.T) {
	sql := &fakeSQL{}
	p := ioprovision.New(sql)

	err := p.CreateDatabase(context.Background(), dbConfig(), auth())
	require.NoError(t, err)

	require.Len(t, sql.batches, 1)
	b := sql.batches[0]
	assert.False(t, b.useNamedDB,
		"the batch runs before the database exists")
	assert.Contains(t, b.batch,
		"CREATE DATABASE IF NOT EXISTS `universal_db`")
	assert.Contains(t, b.batch, "CREATE TABLE IF NOT EXISTS pages")
	assert.Contains(t, b.batch, "CREATE TABLE IF NOT EXISTS admin_users")
}

func TestCreateDatabaseFailure(t *testing.T) {
	sql := &fakeSQL{err: errors.New("ERROR 1045")}
	p := ioprovision.New(sql)

	err := p.CreateDatabase(context.Background(), dbConfig(), auth())
	require.Error(t, err)

	var coder errcode.Coder
	require.ErrorAs(t, err, &coder)
	assert.Equal(t, errcode.SchemaCreateError, coder.Code())
}

func TestCreateUser(t *testing.T) {
	sql := &fakeSQL{}
	p := ioprovision.New(sql)

	err := p.CreateUser(context.Background(), dbConfig(), auth())
	require.NoError(t, err)

	require.Len(t, sql.batches, 1)
	b := sql.batches[0]
	assert.False(t, b.useNamedDB)
	assert.Contains(t, b.batch, "CREATE USER IF NOT EXISTS 'webadmin'")
	assert.Contains(t, b.batch, "FLUSH PRIVILEGES;")
}

func TestSeedUsesNamedDatabase(t *testing.T) {
	sql := &fakeSQL{}
	p := ioprovision.New(sql)

	err := p.Seed(context.Background(), dbConfig(), auth())
	require.NoError(t, err)

	require.Len(t, sql.batches, 1)
	b := sql.batches[0]
	assert.True(t, b.useNamedDB, "seed rows go into the named database")
	assert.Contains(t, b.batch, "INSERT IGNORE INTO pages")
}

func TestSeedFailure(t *testing.T) {
	sql := &fakeSQL{err: errors.New("ERROR 1146")}
	p := ioprovision.New(sql)

	err := p.Seed(context.Background(), dbConfig(), auth())
	require.Error(t, err)

	var coder errcode.Coder
	require.ErrorAs(t, err, &coder)
	assert.Equal(t, errcode.SeedDataError, coder.Code())
}
