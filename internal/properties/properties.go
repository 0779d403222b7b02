// Package properties reads and edits Java .properties files such as the
// local.properties file of an Android project.
//
// Loading never fails: a missing or unreadable file yields an empty Source
// whose Status tells the caller what happened.
package properties

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/go-faster/errors"
	"github.com/magiconair/properties"
)

// Status はプロパティファイルの読み込み結果
type Status string

const (
	// StatusMissing はファイルが存在しないことを示す
	StatusMissing Status = "missing"
	// StatusLoaded はファイルを読み込めたことを示す
	StatusLoaded Status = "loaded"
	// StatusUnreadable はファイルが存在するが読めない・解析できないことを示す
	StatusUnreadable Status = "unreadable"
)

// Encoding は java.util.Properties#load(InputStream) と同じ ISO-8859-1
const Encoding = properties.ISO_8859_1

// newFileMode は新規作成時のパーミッション（APIキーを含むため所有者のみ）
const newFileMode os.FileMode = 0o600

// Source is a read-only view of a loaded properties file.
type Source struct {
	path   string
	status Status
	err    error
	props  *properties.Properties
}

func loader() *properties.Loader {
	// ${...} の展開は Java の Properties にはないため無効化する
	return &properties.Loader{
		Encoding:         Encoding,
		DisableExpansion: true,
	}
}

// Load reads the properties file at path.
func Load(path string) *Source {
	src := &Source{path: path, status: StatusMissing}

	info, err := os.Stat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			src.status = StatusUnreadable
			src.err = errors.Wrap(err, "stat properties file")
		}
		return src
	}
	if info.IsDir() {
		src.status = StatusUnreadable
		src.err = errors.Errorf("%s is a directory", path)
		return src
	}

	props, err := loader().LoadFile(path)
	if err != nil {
		src.status = StatusUnreadable
		src.err = errors.Wrap(err, "parse properties file")
		return src
	}

	src.status = StatusLoaded
	src.props = props
	return src
}

// Parse は与えられたバイト列をプロパティとして解析する（テスト・標準入力用）
func Parse(data []byte) (*Source, error) {
	props, err := loader().LoadBytes(data)
	if err != nil {
		return nil, errors.Wrap(err, "parse properties")
	}
	return &Source{status: StatusLoaded, props: props}, nil
}

// Get returns the value stored under key.
func (s *Source) Get(key string) (string, bool) {
	if s == nil || s.props == nil {
		return "", false
	}
	return s.props.Get(key)
}

// Keys returns the keys in file order.
func (s *Source) Keys() []string {
	if s == nil || s.props == nil {
		return nil
	}
	return s.props.Keys()
}

// Len はキーの数を返す
func (s *Source) Len() int {
	if s == nil || s.props == nil {
		return 0
	}
	return s.props.Len()
}

// Status reports how the file was read.
func (s *Source) Status() Status {
	if s == nil {
		return StatusMissing
	}
	return s.status
}

// Path returns the path given to Load, or "" for parsed sources.
func (s *Source) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Err returns the cause of StatusUnreadable, nil otherwise.
func (s *Source) Err() error {
	if s == nil {
		return nil
	}
	return s.err
}

// Set writes key=value into the file at path, creating it when missing.
// Existing entries and their comments are kept.
func Set(path, key, value string) error {
	if key == "" {
		return errors.New("key must not be empty")
	}
	return edit(path, true, func(p *properties.Properties) error {
		_, _, err := p.Set(key, value)
		return err
	})
}

// Unset removes key from the file at path. A missing file is not an error.
func Unset(path, key string) error {
	return edit(path, false, func(p *properties.Properties) error {
		p.Delete(key)
		return nil
	})
}

func edit(path string, create bool, fn func(*properties.Properties) error) error {
	mode := newFileMode
	var props *properties.Properties

	info, err := os.Stat(path)
	switch {
	case err == nil:
		if info.IsDir() {
			return errors.Errorf("%s is a directory", path)
		}
		mode = info.Mode().Perm()
		props, err = loader().LoadFile(path)
		if err != nil {
			return errors.Wrapf(err, "load %s", path)
		}
	case os.IsNotExist(err):
		if !create {
			return nil
		}
		props = properties.NewProperties()
		props.DisableExpansion = true
	default:
		return errors.Wrapf(err, "stat %s", path)
	}

	if err := fn(props); err != nil {
		return err
	}

	var buf bytes.Buffer
	if _, err := props.WriteComment(&buf, "# ", Encoding); err != nil {
		return errors.Wrap(err, "encode properties")
	}
	return writeFileAtomic(path, buf.Bytes(), mode)
}

// Encode は key=value の組を .properties 形式で書き出す（順序は keys の順）
func Encode(w io.Writer, keys []string, values map[string]string) error {
	p := properties.NewProperties()
	p.DisableExpansion = true
	for _, k := range keys {
		if _, _, err := p.Set(k, values[k]); err != nil {
			return errors.Wrapf(err, "set %s", k)
		}
	}
	if _, err := p.Write(w, Encoding); err != nil {
		return errors.Wrap(err, "write properties")
	}
	return nil
}

// writeFileAtomic は一時ファイルに書き込んでからリネームする
func writeFileAtomic(path string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() // rename 成功後は存在しない

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "write temp file")
	}
	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "chmod temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "replace %s", path)
	}
	return nil
}
