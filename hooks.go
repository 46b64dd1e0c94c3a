package verbalizer

// Hook observes each match the Normalizer verbalizes. BeforeVerbalize runs
// before the variant is called, AfterVerbalize sees the result and error and
// may rewrite either.
type Hook interface {
	BeforeVerbalize(ctx *HookContext)
	AfterVerbalize(ctx *HookContext)
}

type HookContext struct {
	Locale   string
	Category Category
	Match    Match
	Result   string
	Error    error
	Metadata map[string]any
}

func (ctx *HookContext) ensureMetadata() {
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
}

func (ctx *HookContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	ctx.ensureMetadata()
	ctx.Metadata[key] = value
}

func (ctx *HookContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	val, ok := ctx.Metadata[key]
	return val, ok
}

// HookFuncs lets callers implement Hook with closures
type HookFuncs struct {
	Before func(ctx *HookContext)
	After  func(ctx *HookContext)
}

func (h HookFuncs) BeforeVerbalize(ctx *HookContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h HookFuncs) AfterVerbalize(ctx *HookContext) {
	if h.After != nil {
		h.After(ctx)
	}
}

func filterHooks(hooks []Hook) []Hook {
	if len(hooks) == 0 {
		return nil
	}
	filtered := make([]Hook, 0, len(hooks))
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		filtered = append(filtered, hook)
	}
	return filtered
}
