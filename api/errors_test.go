// File: api/errors_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/momentics/hioload-mem/api"
)

func TestErrorUnwrapsToSentinel(t *testing.T) {
	cases := []struct {
		code api.ErrorCode
		want error
	}{
		{api.ErrCodeInvertedRange, api.ErrInvertedRange},
		{api.ErrCodeSourceOutOfBounds, api.ErrSourceOutOfBounds},
		{api.ErrCodeDestOutOfBounds, api.ErrDestOutOfBounds},
		{api.ErrCodeBoundOverflow, api.ErrBoundOverflow},
		{api.ErrCodeBufferReleased, api.ErrBufferReleased},
	}
	for _, tc := range cases {
		err := api.NewError(tc.code, tc.want.Error())
		if !errors.Is(err, tc.want) {
			t.Errorf("code %d does not unwrap to %v", tc.code, tc.want)
		}
	}
}

func TestErrorContextInMessage(t *testing.T) {
	err := api.NewError(api.ErrCodeDestOutOfBounds, "dest is out of bounds").
		WithContext("dest", 10)
	if !strings.Contains(err.Error(), "dest is out of bounds") {
		t.Errorf("message missing: %q", err.Error())
	}
	if !strings.Contains(err.Error(), "10") {
		t.Errorf("context missing: %q", err.Error())
	}
}
