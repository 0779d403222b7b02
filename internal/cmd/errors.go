package cmd

import (
	"github.com/go-faster/errors"

	"github.com/yacchi/mapskey/internal/cmdutil"
	"github.com/yacchi/mapskey/internal/render"
	"github.com/yacchi/mapskey/internal/ui"
)

// ExitCode はエラーの終了コード
type ExitCode int

const (
	ExitOK       ExitCode = 0
	ExitError    ExitCode = 1
	ExitUsage    ExitCode = 2
	ExitNotFound ExitCode = 3
	ExitConfig   ExitCode = 4
	ExitTemplate ExitCode = 5
)

// ExitCodeFor はエラーに対応する終了コードを返す
func ExitCodeFor(err error) ExitCode {
	if err == nil {
		return ExitOK
	}

	var unknown *render.UnknownPlaceholdersError
	switch {
	case errors.As(err, &unknown):
		return ExitTemplate
	case errors.Is(err, render.ErrUnknownFormat), errors.Is(err, cmdutil.ErrUsage):
		return ExitUsage
	case errors.Is(err, cmdutil.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, cmdutil.ErrConfig):
		return ExitConfig
	default:
		return ExitError
	}
}

// HandleError はエラーを表示して終了コードを返す
func HandleError(err error) ExitCode {
	code := ExitCodeFor(err)
	if code == ExitOK {
		return code
	}

	var unknown *render.UnknownPlaceholdersError
	if errors.As(err, &unknown) {
		ui.Error("Template references placeholders with no value: %v", unknown.Names)
		return code
	}

	ui.Error("%v", err)
	return code
}
