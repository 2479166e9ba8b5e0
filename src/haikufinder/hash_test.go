package haikufinder_test

import (
	"testing"

	"github.com/lruss/haiku-finder/src/haikufinder"
	"github.com/stretchr/testify/assert"
)

func Test_DuplicateHash(t *testing.T) {
	equal := [][]string{
		{"old pond", "old pond"},
		{"old pond", "OLD POND"},
		{"old pond", "old po'nd"},
		{"Old pond,", "\"old Pond\""},
	}
	notEqual := [][]string{
		{"old pond", "old ponds"},
		{"gold pond", "old pond"},
		{"old pond", "oldpond"},
		{"old pond", "old\npond"},
	}

	for _, tt := range equal {
		assert.Equal(t, haikufinder.DuplicateHash(tt[0]), haikufinder.DuplicateHash(tt[1]), "hash('%s') != hash('%s')", tt[0], tt[1])
	}
	for _, tt := range notEqual {
		assert.NotEqual(t, haikufinder.DuplicateHash(tt[0]), haikufinder.DuplicateHash(tt[1]), "hash('%s') == hash('%s')", tt[0], tt[1])
	}
}
