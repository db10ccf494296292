package dnamatch

import (
	"math/rand"
	"testing"

	"github.com/Giorgos-Arg/dna-pattern-matching/config"
)

// testConfig avoids reading the global viper state in tests.
func testConfig() *config.Config {
	return &config.Config{
		Hash: config.HashConfig{Base: 2, Modulus: 2147483647},
		Lcss: config.LcssConfig{MaxTableCells: 64 * 1024 * 1024},
	}
}

func Test_RabinKarp(t *testing.T) {
	type args struct {
		seq     string
		pattern string
	}

	tests := []struct {
		name    string
		args    args
		want    int
		wantErr bool
	}{
		{
			"repeated pattern",
			args{"acgtacgt", "acgt"},
			2,
			false,
		},
		{
			"overlapping occurrences",
			args{"aaaa", "aa"},
			3,
			false,
		},
		{
			"absent pattern",
			args{"acgt", "tttt"},
			0,
			false,
		},
		{
			"pattern equals sequence",
			args{"acgt", "acgt"},
			1,
			false,
		},
		{
			"single character pattern",
			args{"gattaca", "a"},
			3,
			false,
		},
		{
			"pattern longer than sequence",
			args{"acg", "acgt"},
			0,
			false,
		},
		{
			"empty pattern",
			args{"acgt", ""},
			0,
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RabinKarp(tt.args.seq, tt.args.pattern, testConfig())
			if (err != nil) != tt.wantErr {
				t.Errorf("RabinKarp() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("RabinKarp() = %d, want %d", got, tt.want)
			}
		})
	}
}

// RabinKarp must agree with BruteForce on every input.
func Test_RabinKarp_matchesBruteForce(t *testing.T) {
	conf := testConfig()
	rng := rand.New(rand.NewSource(42))
	letters := []byte("acgt")

	randSeq := func(n int) string {
		seq := make([]byte, n)
		for i := range seq {
			seq[i] = letters[rng.Intn(len(letters))]
		}
		return string(seq)
	}

	for i := 0; i < 500; i++ {
		seq := randSeq(1 + rng.Intn(200))
		pattern := randSeq(1 + rng.Intn(6))

		want, err := BruteForce(seq, pattern)
		if err != nil {
			t.Fatal(err)
		}
		got, err := RabinKarp(seq, pattern, conf)
		if err != nil {
			t.Fatal(err)
		}

		if got != want {
			t.Errorf("RabinKarp(%q, %q) = %d, BruteForce = %d", seq, pattern, got, want)
		}
	}
}

// a tiny modulus guarantees hash collisions between unequal windows. The
// candidate confirmation must reject all of them.
func Test_RabinKarp_collisions(t *testing.T) {
	conf := testConfig()
	conf.Hash.Modulus = 8

	rng := rand.New(rand.NewSource(7))
	letters := []byte("acgt")

	randSeq := func(n int) string {
		seq := make([]byte, n)
		for i := range seq {
			seq[i] = letters[rng.Intn(len(letters))]
		}
		return string(seq)
	}

	for i := 0; i < 200; i++ {
		seq := randSeq(1 + rng.Intn(100))
		pattern := randSeq(1 + rng.Intn(4))

		want, _ := BruteForce(seq, pattern)
		got, err := RabinKarp(seq, pattern, conf)
		if err != nil {
			t.Fatal(err)
		}

		if got != want {
			t.Errorf("RabinKarp(%q, %q) with modulus 8 = %d, BruteForce = %d", seq, pattern, got, want)
		}
	}
}

func Test_RabinKarp_badHashSettings(t *testing.T) {
	conf := testConfig()
	conf.Hash.Modulus = 0
	if _, err := RabinKarp("acgt", "ac", conf); err == nil {
		t.Error("expected an error for a zero modulus")
	}

	conf = testConfig()
	conf.Hash.Base = 1
	if _, err := RabinKarp("acgt", "ac", conf); err == nil {
		t.Error("expected an error for base 1")
	}
}

func Test_hasher_roll(t *testing.T) {
	h := newHasher(2, 2147483647, 4)

	seq := "gattacagattaca"
	windowHash := h.hash(seq[:4])
	for i := 1; i+4 <= len(seq); i++ {
		windowHash = h.roll(windowHash, seq[i-1], seq[i+3])
		if fresh := h.hash(seq[i : i+4]); windowHash != fresh {
			t.Fatalf("rolled hash at %d = %d, full hash = %d", i, windowHash, fresh)
		}
	}
}
