package bridge

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echo() Command {
	return Func("echo", []string{"text"}, func(a Args) string { return a["text"] })
}

func TestNewRegistry_RejectsDuplicates(t *testing.T) {
	_, err := NewRegistry(nil, echo(), echo())
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestNewRegistry_RejectsEmptyName(t *testing.T) {
	_, err := NewRegistry(nil, Func("", nil, func(Args) string { return "" }))
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestRegistry_Invoke(t *testing.T) {
	r, err := NewRegistry(nil, echo())
	require.NoError(t, err)

	got, err := r.Invoke("echo", Args{"text": "merhaba"})
	require.NoError(t, err)
	assert.Equal(t, "merhaba", got)
}

func TestRegistry_InvokeEmptyArgumentIsPresent(t *testing.T) {
	r, err := NewRegistry(nil, echo())
	require.NoError(t, err)

	got, err := r.Invoke("echo", Args{"text": ""})
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestRegistry_InvokeUnknown(t *testing.T) {
	r, err := NewRegistry(nil, echo())
	require.NoError(t, err)

	_, err = r.Invoke("missing", nil)
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), "missing")
}

func TestRegistry_InvokeMissingArgument(t *testing.T) {
	r, err := NewRegistry(nil, echo())
	require.NoError(t, err)

	_, err = r.Invoke("echo", Args{})
	assert.ErrorIs(t, err, ErrMissingArgument)
	assert.Contains(t, err.Error(), `"text"`)
}

func TestRegistry_Names(t *testing.T) {
	r, err := NewRegistry(nil,
		Func("zeta", nil, func(Args) string { return "" }),
		Func("alpha", nil, func(Args) string { return "" }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, r.Names())
}

func TestRegistry_Dispatch(t *testing.T) {
	r, err := NewRegistry(nil, echo())
	require.NoError(t, err)

	tests := []struct {
		name       string
		request    string
		wantResult *string
		wantError  string
	}{
		{
			name:       "success",
			request:    `{"cmd":"echo","args":{"text":"hi"}}`,
			wantResult: strPtr("hi"),
		},
		{
			name:       "empty result is still a result",
			request:    `{"cmd":"echo","args":{"text":""}}`,
			wantResult: strPtr(""),
		},
		{name: "unknown", request: `{"cmd":"nope"}`, wantError: "unknown command"},
		{name: "missing arg", request: `{"cmd":"echo"}`, wantError: "missing argument"},
		{name: "no cmd", request: `{}`, wantError: "malformed request"},
		{name: "bad json", request: `{"cmd":`, wantError: "malformed request"},
		{name: "wrong type", request: `{"cmd":"echo","args":{"text":1}}`, wantError: "malformed request"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp Response
			require.NoError(t, json.Unmarshal(r.Dispatch([]byte(tt.request)), &resp))

			if tt.wantResult != nil {
				require.NotNil(t, resp.Result)
				assert.Equal(t, *tt.wantResult, *resp.Result)
				assert.Empty(t, resp.Error)
				return
			}
			assert.Nil(t, resp.Result)
			assert.Contains(t, resp.Error, tt.wantError)
		})
	}
}

func strPtr(s string) *string {
	return &s
}
