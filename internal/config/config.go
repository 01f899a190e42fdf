package config

import (
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	wordtree "github.com/sarthakjha889/go-wordtree"
)

var ErrNoSources = errors.New("no word sources configured")

// Env is read from WORDTREE_* environment variables.
type Env struct {
	ConfigPath      string `envconfig:"WORDTREE_CONFIG_PATH"`
	WordListPath    string `envconfig:"WORDTREE_WORDLIST_PATH"`
	Encoding        string `envconfig:"WORDTREE_ENCODING" default:"utf-8"`
	SkipUndecodable bool   `envconfig:"WORDTREE_SKIP_UNDECODABLE" default:"false"`
}

type Source struct {
	Path     string            `yaml:"path" json:"path"`
	Encoding wordtree.Encoding `yaml:"encoding" json:"encoding"`
}

// File is the optional YAML configuration listing word sources.
type File struct {
	Sources         []Source `yaml:"sources" json:"sources"`
	SkipUndecodable bool     `yaml:"skip_undecodable" json:"skip_undecodable"`
}

type Config struct {
	Sources         []Source
	SkipUndecodable bool
}

func ReadEnv() (Env, error) {
	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return Env{}, errors.Wrap(err, "read environment")
	}
	return env, nil
}

// LoadFile reads a YAML config file. Relative source paths are resolved against
// the directory holding the file.
func LoadFile(path string) (File, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return File{}, errors.Wrapf(err, "read config %s", path)
	}
	var file File
	if err := yaml.Unmarshal(buf, &file); err != nil {
		return File{}, errors.Wrapf(err, "parse config %s", path)
	}

	dir := filepath.Dir(path)
	for i, src := range file.Sources {
		if src.Path == "" {
			return File{}, errors.Errorf("config %s: source %d has no path", path, i)
		}
		if !filepath.IsAbs(src.Path) {
			file.Sources[i].Path = filepath.Join(dir, src.Path)
		}
		if src.Encoding == "" {
			file.Sources[i].Encoding = wordtree.EncodingUTF8
		}
		if !wordtree.ValidEncoding(file.Sources[i].Encoding) {
			return File{}, errors.Wrapf(wordtree.ErrUnknownEncoding, "config %s: source %s: %q", path, src.Path, string(src.Encoding))
		}
	}
	return file, nil
}

// Resolve combines the environment with the config file it points to. The word
// list from the environment comes first.
func Resolve(env Env) (Config, error) {
	var cfg Config
	cfg.SkipUndecodable = env.SkipUndecodable

	if env.WordListPath != "" {
		enc := wordtree.Encoding(env.Encoding)
		if !wordtree.ValidEncoding(enc) {
			return Config{}, errors.Wrapf(wordtree.ErrUnknownEncoding, "WORDTREE_ENCODING %q", env.Encoding)
		}
		cfg.Sources = append(cfg.Sources, Source{Path: env.WordListPath, Encoding: enc})
	}

	if env.ConfigPath != "" {
		file, err := LoadFile(env.ConfigPath)
		if err != nil {
			return Config{}, err
		}
		cfg.Sources = append(cfg.Sources, file.Sources...)
		cfg.SkipUndecodable = cfg.SkipUndecodable || file.SkipUndecodable
	}

	if len(cfg.Sources) == 0 {
		return Config{}, ErrNoSources
	}
	return cfg, nil
}

// Load reads the environment and resolves it.
func Load() (Config, error) {
	env, err := ReadEnv()
	if err != nil {
		return Config{}, err
	}
	return Resolve(env)
}
