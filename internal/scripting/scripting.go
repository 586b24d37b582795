// Package scripting hosts a user-supplied JavaScript renderer that can
// replace the built-in label for a URL. The script defines a single
// render(url) function; returning a string supplies the label,
// returning null or undefined declines the URL.
package scripting

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/dop251/goja"
)

// RenderFunc is the name of the function every script must define.
const RenderFunc = "render"

// Engine holds one compiled script for the lifetime of the process.
// The goja VM is single-threaded, so calls into the script are
// serialized by a mutex; several renderers can share one Engine.
type Engine struct {
	path   string
	mu     sync.Mutex
	vm     *goja.Runtime
	render goja.Callable
}

// New reads, compiles, and evaluates the script at path, then looks up
// its render function. Any failure here is fatal to startup, unlike
// per-URL script errors.
func New(path string) (*Engine, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	program, err := goja.Compile(path, string(src), true)
	if err != nil {
		return nil, fmt.Errorf("compile script: %w", err)
	}

	vm := goja.New()
	if _, err := vm.RunProgram(program); err != nil {
		return nil, fmt.Errorf("evaluate script: %w", err)
	}
	render, ok := goja.AssertFunction(vm.Get(RenderFunc))
	if !ok {
		return nil, fmt.Errorf("script %s does not define a %s function", path, RenderFunc)
	}

	return &Engine{path: path, vm: vm, render: render}, nil
}

// Path returns the script's file path, for logging.
func (e *Engine) Path() string {
	return e.path
}

// Render asks the script for a replacement label. A null or undefined
// result declines the URL. Script exceptions and non-string results
// come back as errors; the caller decides whether they abort the line
// or the whole run.
func (e *Engine) Render(u *url.URL) (string, bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	result, err := e.render(goja.Undefined(), e.vm.ToValue(scriptURL(u)))
	if err != nil {
		return "", false, fmt.Errorf("script %s: %w", e.path, err)
	}
	if result == nil || goja.IsUndefined(result) || goja.IsNull(result) {
		return "", false, nil
	}
	label, ok := result.Export().(string)
	if !ok {
		return "", false, fmt.Errorf("script %s: %s returned %s, want string or null", e.path, RenderFunc, result.ExportType())
	}
	return label, true, nil
}

// scriptURL flattens a URL into the plain object handed to the script.
func scriptURL(u *url.URL) map[string]any {
	segments := strings.Split(strings.TrimPrefix(u.EscapedPath(), "/"), "/")

	query := make(map[string]string)
	for key, values := range u.Query() {
		if len(values) > 0 {
			query[key] = values[0]
		}
	}

	return map[string]any{
		"href":     u.String(),
		"scheme":   u.Scheme,
		"host":     u.Hostname(),
		"path":     u.EscapedPath(),
		"segments": segments,
		"query":    query,
		"fragment": u.Fragment,
	}
}
