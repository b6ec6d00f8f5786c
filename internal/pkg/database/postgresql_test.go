package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPostgreSQLDB_RejectsMalformedDSN(t *testing.T) {
	db, err := NewPostgreSQLDB("://not-a-dsn", 25, 5)
	assert.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "parse database config")
}
