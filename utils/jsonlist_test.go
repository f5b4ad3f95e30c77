package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToJSONList(t *testing.T) {
	assert.JSONEq(t, `["Go","React"]`, string(ToJSONList([]string{"Go", "React"})))
	assert.JSONEq(t, `[]`, string(ToJSONList(nil)))
	assert.JSONEq(t, `[]`, string(ToJSONList([]string{})))
}
