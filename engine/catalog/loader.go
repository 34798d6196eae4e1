package catalog

import (
	"fmt"
	"os"

	"github.com/1siamBot/hexboard-synth/internal/monitoring"
	"github.com/tailscale/hujson"
)

// PrimarySource is the name the primary catalog's icons are registered under.
const PrimarySource = "original"

// LoadPrimary reads the primary recipe catalog, shaped
// {version: {iconName: recipe}}, and returns all versions' icon names as one
// source. A missing or malformed file yields an empty source.
func LoadPrimary(path string) Source {
	src := Source{Name: PrimarySource}
	root, ok := readObject(path)
	if !ok {
		return src
	}
	for _, version := range root.Members {
		src.Icons = append(src.Icons, memberNames(version.Value)...)
	}
	return src
}

// LoadAddons reads the addon recipe catalog, shaped
// {addon: {iconName: recipe}}, into one source per addon. A missing or
// malformed file yields no sources.
func LoadAddons(path string) []Source {
	root, ok := readObject(path)
	if !ok {
		return nil
	}
	var out []Source
	for _, addon := range root.Members {
		out = append(out, Source{
			Name:  literalString(addon.Name),
			Icons: memberNames(addon.Value),
		})
	}
	return out
}

// readObject parses a JSON (or JSON with comments) file whose root is an
// object. Object member order is preserved, which keeps category ids stable
// between runs.
func readObject(path string) (*hujson.Object, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		monitoring.Logf("Warning: failed to read catalog %s: %v", path, err)
		return nil, false
	}
	v, err := hujson.Parse(data)
	if err != nil {
		monitoring.Logf("Warning: something went wrong while opening catalog %s: %v", path, err)
		return nil, false
	}
	obj, ok := v.Value.(*hujson.Object)
	if !ok {
		monitoring.Logf("Warning: catalog %s: %v", path, fmt.Errorf("root is not an object"))
		return nil, false
	}
	return obj, true
}

func memberNames(v hujson.Value) []string {
	obj, ok := v.Value.(*hujson.Object)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(obj.Members))
	for _, m := range obj.Members {
		names = append(names, literalString(m.Name))
	}
	return names
}

func literalString(v hujson.Value) string {
	lit, ok := v.Value.(hujson.Literal)
	if !ok {
		return ""
	}
	return lit.String()
}
