package rootcmd

import (
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// YAML is a kong.ConfigurationLoader for YAML files. A flag is looked up
// by its name, by its name with underscores, and as a path of nested keys
// split on dots ("serve.listen").
func YAML(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && err != io.EOF {
		return nil, err
	}

	var f kong.ResolverFunc = func(kctx *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		for _, key := range []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")} {
			if v, ok := values[key]; ok {
				return v, nil
			}
		}

		var raw any = values
		for _, part := range strings.Split(flag.Name, ".") {
			m, ok := raw.(map[string]any)
			if !ok {
				return nil, nil
			}
			if raw, ok = m[part]; !ok {
				return nil, nil
			}
		}
		return raw, nil
	}
	return f, nil
}
