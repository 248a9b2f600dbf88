package jdate

import "time"

// Vocabulary names the specifier language a render used.
type Vocabulary string

const (
	VocabularyDate     Vocabulary = "date"
	VocabularyStrftime Vocabulary = "strftime"
)

// MetadataUnknownSpecifiers holds the []string of specifiers a render did not
// recognize and emitted literally.
const MetadataUnknownSpecifiers = "unknown_specifiers"

// FormatHook observes renders. BeforeFormat may rewrite the pattern; AfterFormat
// may replace the result.
type FormatHook interface {
	BeforeFormat(ctx *FormatHookContext)
	AfterFormat(ctx *FormatHookContext)
}

type FormatHookContext struct {
	Vocabulary Vocabulary
	Pattern    string
	Epoch      int64
	Location   *time.Location
	Script     Script
	Result     string
	Metadata   map[string]any
}

func (ctx *FormatHookContext) ensureMetadata() {
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
}

func (ctx *FormatHookContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	ctx.ensureMetadata()
	ctx.Metadata[key] = value
}

func (ctx *FormatHookContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	val, ok := ctx.Metadata[key]
	return val, ok
}

// UnknownSpecifiers returns the specifiers the render passed through literally.
func (ctx *FormatHookContext) UnknownSpecifiers() []string {
	value, ok := ctx.MetadataValue(MetadataUnknownSpecifiers)
	if !ok {
		return nil
	}
	unknown, _ := value.([]string)
	return unknown
}

type FormatHookFuncs struct {
	Before func(ctx *FormatHookContext)
	After  func(ctx *FormatHookContext)
}

func (h FormatHookFuncs) BeforeFormat(ctx *FormatHookContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h FormatHookFuncs) AfterFormat(ctx *FormatHookContext) {
	if h.After != nil {
		h.After(ctx)
	}
}

func filterHooks(hooks []FormatHook) []FormatHook {
	var filtered []FormatHook
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		filtered = append(filtered, hook)
	}
	return filtered
}

// runHooked wraps render with the Before and After hooks.
func runHooked(hooks []FormatHook, ctx *FormatHookContext, render func(ctx *FormatHookContext) (string, []string)) string {
	for _, hook := range hooks {
		hook.BeforeFormat(ctx)
	}

	result, unknown := render(ctx)
	ctx.Result = result
	if len(unknown) > 0 {
		ctx.SetMetadata(MetadataUnknownSpecifiers, unknown)
	}

	for _, hook := range hooks {
		hook.AfterFormat(ctx)
	}
	return ctx.Result
}
