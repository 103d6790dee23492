package main

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
	}{
		{
			name:     "accepted",
			args:     []string{"-first-name", "Ana", "-last-name", "Lee", "-age", "30", "-country", "FR", "-course-code", "COU101"},
			wantCode: 0,
			wantOut:  "accepted\n",
		},
		{
			name:     "rejected",
			args:     []string{"-first-name", "Ana", "-last-name", "Lee", "-age", "17", "-country", "BR", "-course-code", "XYZ"},
			wantCode: 1,
			wantOut:  "age: Age must be greater than 18\ncourseCode: Must start with 'COU'\n",
		},
		{
			name:     "prefix override",
			args:     []string{"-first-name", "Ana", "-last-name", "Lee", "-age", "30", "-course-code", "ZDR1", "-prefix", "ZDR"},
			wantCode: 0,
			wantOut:  "accepted\n",
		},
		{
			name:     "prefix with tag separators",
			args:     []string{"-first-name", "Ana", "-last-name", "Lee", "-age", "30", "-course-code", "XYZ", "-prefix", "A,B"},
			wantCode: 1,
			wantOut:  "courseCode: Must start with 'A,B'\n",
		},
		{
			name:     "unsupported prefix",
			args:     []string{"-prefix", "A0x2CB"},
			wantCode: 2,
		},
		{
			name:     "absent flags",
			args:     nil,
			wantCode: 1,
			wantOut:  "firstName: is required\nlastName: is required\nage: is required\ncourseCode: is required\n",
		},
		{
			name:     "unknown flag",
			args:     []string{"-nope"},
			wantCode: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, "COU", &stdout, &stderr, false, zerolog.Nop())

			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantOut, stdout.String())
		})
	}
}

func TestRun_Color(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-first-name", "Ana"}, "COU", &stdout, &stderr, true, zerolog.Nop())

	assert.Equal(t, 1, code)
	assert.Contains(t, stdout.String(), ansiRed+"lastName"+ansiReset+": is required")
}
