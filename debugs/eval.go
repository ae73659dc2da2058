package debugs

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

func toStringDict(globals map[string]any) starlark.StringDict {
	ret := make(starlark.StringDict)
	for name, value := range globals {
		ret[name] = toStarlarkValue(value)
	}
	return ret
}

// Eval evaluates one starlark expression against globals.
func Eval(expr string, globals map[string]any) (string, error) {
	thread := &starlark.Thread{
		Name: "eval",
	}
	value, err := starlark.EvalOptions(fileOptions, thread, "<expr>", expr, toStringDict(globals))
	if err != nil {
		return "", err
	}
	return value.String(), nil
}
