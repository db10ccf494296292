package dnamatch

import (
	"errors"
	"path"
	"testing"
)

func Test_Validate(t *testing.T) {
	tests := []struct {
		name    string
		seq     string
		wantErr bool
	}{
		{
			"valid sequence",
			"gattaca",
			false,
		},
		{
			"empty sequence",
			"",
			false,
		},
		{
			"uppercase rejected",
			"ACGT",
			true,
		},
		{
			"non dna character",
			"acgu",
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.seq)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.seq, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrAlphabet) {
				t.Errorf("Validate(%q) error = %v, want ErrAlphabet", tt.seq, err)
			}
		})
	}
}

func Test_ReadSeq(t *testing.T) {
	seq, err := ReadSeq(path.Join("..", "..", "test", "input", "seq.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if seq != "acgtacgt" {
		t.Errorf("ReadSeq(seq.txt) = %q, want %q", seq, "acgtacgt")
	}
}

// line breaks may appear anywhere in a sequence file and are dropped
func Test_ReadSeq_multiline(t *testing.T) {
	seq, err := ReadSeq(path.Join("..", "..", "test", "input", "multiline.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if seq != "acgtacgt" {
		t.Errorf("ReadSeq(multiline.txt) = %q, want %q", seq, "acgtacgt")
	}
}

func Test_ReadSeq_invalid(t *testing.T) {
	if _, err := ReadSeq(path.Join("..", "..", "test", "input", "invalid.txt")); !errors.Is(err, ErrAlphabet) {
		t.Errorf("ReadSeq(invalid.txt) error = %v, want ErrAlphabet", err)
	}

	if _, err := ReadSeq(path.Join("..", "..", "test", "input", "missing.txt")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
