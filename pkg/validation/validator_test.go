package validation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namesRequest struct {
	Names []string `json:"names" binding:"dive,required"`
}

func TestToDetailsReportsListEntries(t *testing.T) {
	Init()

	err := binding.Validator.ValidateStruct(&namesRequest{Names: []string{"ok", ""}})
	require.Error(t, err)

	assert.Equal(t, map[string]string{"names[1]": "is required"}, ToDetails(err))
}

func TestToDetailsInvalidJSON(t *testing.T) {
	var v map[string]any
	err := json.Unmarshal([]byte("{"), &v)

	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))
	assert.Equal(t, map[string]string{"payload": "invalid payload"}, ToDetails(errors.New("boom")))
	assert.Nil(t, ToDetails(nil))
}
