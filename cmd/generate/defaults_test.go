package generate_test

import (
	"testing"

	"github.com/safe-waters/docker-project/cmd/generate"
)

func TestDefaultPathCollector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		Name       string
		Flags      *generate.ConfigfileFlags
		ShouldFail bool
	}{
		{
			Name:       "Nil Flags",
			ShouldFail: true,
		},
		{
			Name:  "Normal",
			Flags: &generate.ConfigfileFlags{BaseDir: "."},
		},
		{
			Name: "Recursive",
			Flags: &generate.ConfigfileFlags{
				BaseDir:   ".",
				Recursive: true,
			},
		},
	}

	for _, test := range tests {
		test := test

		t.Run(test.Name, func(t *testing.T) {
			t.Parallel()

			collector, err := generate.DefaultPathCollector(test.Flags)
			if test.ShouldFail {
				if err == nil {
					t.Fatal("expected error but did not get one")
				}

				return
			}

			if err != nil {
				t.Fatal(err)
			}

			if collector == nil {
				t.Fatal("expected non nil collector")
			}
		})
	}
}

func TestDefaultComposefileValidator(t *testing.T) {
	t.Parallel()

	validator, err := generate.DefaultComposefileValidator(false, ".env")
	if err != nil {
		t.Fatal(err)
	}

	if validator != nil {
		t.Fatal("expected nil validator when validation is disabled")
	}

	validator, err = generate.DefaultComposefileValidator(
		true, "does-not-exist.env",
	)
	if err != nil {
		t.Fatal(err)
	}

	if validator == nil {
		t.Fatal("expected non nil validator when validation is enabled")
	}
}
