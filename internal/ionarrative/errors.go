package ionarrative

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/cfazone/pkg/errcode"
	"github.com/gnames/gn"
)

var (
	ErrUnknownProvider = errors.New("unknown narrative provider")
	ErrNoAPIKey        = errors.New("API key is not set")
	ErrEmptyAnswer     = errors.New("empty answer")
)

type statusError struct {
	msg string
}

func (e *statusError) Error() string {
	return "service error: " + e.msg
}

func ConfigError(provider string, err error) error {
	msg := `Cannot create narrative provider <em>%s</em>

Set the API key in the environment or in ~/.config/cfazone/.env
(OPENAI_API_KEY or GEMINI_API_KEY), or use 'narrative.provider: template'.`
	vars := []any{provider}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NarrativeConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %w", fn.Name(), err),
	}
}

func RequestError(provider string, err error) error {
	msg := "Narrative request to <em>%s</em> failed"
	vars := []any{provider}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NarrativeRequestError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %w", fn.Name(), err),
	}
}
