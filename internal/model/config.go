package model

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/encoding/yaml"
	"github.com/creasty/defaults"

	_ "embed"
)

const (
	LogStderr  = "stderr"
	LogStdout  = "stdout"
	LogDiscard = "discard"
)

// Selection holds the four independent counter switches. The zero value means
// the user picked nothing, which callers resolve to DefaultSelection.
type Selection struct {
	Lines bool `json:"lines,omitempty"`
	Words bool `json:"words,omitempty"`
	Chars bool `json:"chars,omitempty"`
	Bytes bool `json:"bytes,omitempty"`
}

// DefaultSelection is what a plain invocation without counter flags counts.
func DefaultSelection() Selection {
	return Selection{Lines: true, Words: true, Bytes: true}
}

func (s Selection) IsZero() bool {
	return s == Selection{}
}

// Union returns the per-field OR of both selections.
func (s Selection) Union(other Selection) Selection {
	return Selection{
		Lines: s.Lines || other.Lines,
		Words: s.Words || other.Words,
		Chars: s.Chars || other.Chars,
		Bytes: s.Bytes || other.Bytes,
	}
}

// ServiceFields is the ambient part of the configuration.
type ServiceFields struct {
	Verbose bool   `json:"verbose,omitempty"`
	Log     string `json:"log,omitempty" default:"stderr"` // "stderr"|"stdout"|"discard"|path
	Human   bool   `json:"human,omitempty"`
	Workers int    `json:"workers,omitempty" default:"4"`
}

// Config is the content of an optional tally.yaml.
type Config struct {
	Version int           `json:"version"` // fixed 0 for now
	Count   Selection     `json:"count"`
	Service ServiceFields `json:"service"`
}

// DefaultConfig is used when no configuration file was found.
func DefaultConfig() Config {
	var cfg = Config{Version: 0}
	if err := defaults.Set(&cfg); err != nil {
		panic(err)
	}
	return cfg
}

//go:embed config.cue
var cueSource []byte

var (
	cueCtx    *cue.Context
	cueConfig cue.Value
)

func init() {
	if len(cueSource) == 0 {
		panic("variable cueSource is empty")
	}
	cueCtx = cuecontext.New()
	compiled := cueCtx.CompileBytes(cueSource)
	if compiled.Err() != nil {
		panic(compiled.Err())
	}

	if err := compiled.Validate(); err != nil {
		panic(err)
	}

	cueConfig = compiled.LookupPath(cue.ParsePath("#Config"))
	if cueConfig.Err() != nil {
		panic(cueConfig.Err())
	}
	if err := cueConfig.Validate(); err != nil {
		panic(err)
	}
}

// LoadConfig validates YAML from r against CUE schema and decodes to Config.
// NOT SAFE for multiple goroutines
// Return CueError in a case validation phase fails
func LoadConfig(r io.Reader) (Config, error) {
	var ret Config
	if err := loadConfig1(r, &ret); err != nil {
		return ret, err
	}
	return ret, nil
}

func LoadConfigFromPath(path string) (Config, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("error opening config file: %w", err)
		}
		r = f
		defer func() {
			err := f.Close()
			if err != nil {
				slog.Error("can't close config file", "path", path, "error", err)
			}
		}()
	}
	ret, err := LoadConfig(r)
	if err != nil {
		var cuerr CueError
		if errors.As(err, &cuerr) {
			for _, d := range cuerr.Details() {
				slog.Error("validation error", d.Attr("detail"))
			}
		}
		return ret, fmt.Errorf("parsing config: %w", err)
	}
	return ret, nil
}

func loadConfig1(r io.Reader, pt *Config) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	r = bytes.NewReader(b)

	yamlFile, err := yaml.Extract("config.yaml", r)
	if err != nil {
		return err
	}
	yamlValue := cueCtx.BuildFile(yamlFile)

	unified := cueConfig.Unify(yamlValue)
	if err := unified.Validate(
		cue.All(),          // all constraints
		cue.Concrete(true), // no incomplete values
	); err != nil {
		return CueError{cuerr: err, config: yamlValue, schema: cueConfig}
	}

	if err := unified.Decode(pt); err != nil {
		return err
	}

	pt.Service.Log = os.ExpandEnv(pt.Service.Log)
	return defaults.Set(pt)
}

// CueError provides more user friendly validation errors on top of
// those generated by cuelang itself
type CueError struct {
	cuerr  error
	config cue.Value // content of --config file
	schema cue.Value // loaded cue schema
}

// Error implements error interface, returns the string content of underlying
// cue error
func (e CueError) Error() string {
	return e.cuerr.Error()
}

// Unwrap allows one to get the original error via errors.As
func (e CueError) Unwrap() error {
	return e.cuerr
}

// Details provide human-friendlier error messages
func (e CueError) Details() []CueErrorDetail {
	errs := cueerrors.Errors(e.cuerr)
	ret := make([]CueErrorDetail, 0, len(errs))
	for _, err := range errs {
		format, args := err.Msg()
		ret = append(ret, CueErrorDetail{
			Path:    strings.Join(err.Path(), "."),
			Message: fmt.Sprintf(format, args...),
		})
	}
	return ret
}

// CueErrorDetail is a single validation failure located by a config path.
type CueErrorDetail struct {
	Path    string
	Message string
}

// Attr formats the detail as a slog group under the given key.
func (d CueErrorDetail) Attr(key string) slog.Attr {
	return slog.Group(key,
		slog.String("path", d.Path),
		slog.String("message", d.Message),
	)
}
