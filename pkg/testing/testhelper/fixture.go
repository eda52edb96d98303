package testhelper

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// KLines holds column-oriented kline series.
type KLines struct {
	Open   []float64 `yaml:"open"`
	High   []float64 `yaml:"high"`
	Low    []float64 `yaml:"low"`
	Close  []float64 `yaml:"close"`
	Volume []float64 `yaml:"volume"`
}

// Len returns the number of klines.
func (k KLines) Len() int {
	return len(k.Close)
}

// Pairs holds two aligned close series and their rolling correlation.
type Pairs struct {
	BTC      []float64 `yaml:"btc"`
	ETH      []float64 `yaml:"eth"`
	Correl14 []float64 `yaml:"correl_14"`
}

// Fixture is the content of testdata/klines.yaml.
type Fixture struct {
	KLines KLines               `yaml:"klines"`
	Golden map[string][]float64 `yaml:"golden"`
	Pairs  Pairs                `yaml:"pairs"`
}

func testdataDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "testdata")
}

// LoadYAML decodes testdata/<name> of this package into v.
func LoadYAML(name string, v interface{}) error {
	data, err := os.ReadFile(filepath.Join(testdataDir(), name))
	if err != nil {
		return errors.Wrapf(err, "read fixture %s", name)
	}

	if err := yaml.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, "decode fixture %s", name)
	}

	return nil
}

// LoadFixture loads the shared kline fixture or fails the test.
func LoadFixture(t testing.TB) *Fixture {
	t.Helper()

	var f Fixture
	if err := LoadYAML("klines.yaml", &f); err != nil {
		t.Fatal(err)
	}

	return &f
}

// GoldenSeries returns the named reference series or fails the test.
func (f *Fixture) GoldenSeries(t testing.TB, name string) []float64 {
	t.Helper()

	s, ok := f.Golden[name]
	if !ok {
		t.Fatalf("golden series %q not found", name)
	}

	return s
}
