package envfile

import (
	"bytes"
	"encoding/base64"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

type fileType int

const (
	fileTypeDotEnv fileType = iota
	fileTypeDockerCompose
	fileTypeK8s
	fileTypeSystemd
)

// detectFileType determines the env file format from its name. Anything not
// recognized, including .envrc and shell scripts, uses the dotenv rules.
func detectFileType(path string) fileType {
	filename := filepath.Base(path)

	if strings.HasPrefix(filename, ".env") {
		return fileTypeDotEnv
	}

	isYAML := strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")

	if isYAML && (strings.HasPrefix(filename, "docker-compose") || strings.HasPrefix(filename, "compose.")) {
		return fileTypeDockerCompose
	}

	if isYAML && (strings.Contains(filename, "configmap") || strings.Contains(filename, "secret")) {
		return fileTypeK8s
	}

	if strings.HasSuffix(filename, ".service") {
		return fileTypeSystemd
	}

	return fileTypeDotEnv
}

// mappingValue returns the value node for key in a mapping node
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// scalarValue returns the text of a scalar node; null values are empty
func scalarValue(node *yaml.Node) string {
	if node == nil || node.Kind != yaml.ScalarNode || node.Tag == "!!null" {
		return ""
	}
	return node.Value
}

// decodeDocuments decodes every YAML document in data. Decoding stops at EOF
// or at the first invalid document, keeping what was read so far.
func decodeDocuments(data []byte) []*yaml.Node {
	var docs []*yaml.Node
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			return docs
		}
		if len(doc.Content) > 0 {
			docs = append(docs, doc.Content[0])
		}
	}
}

// parseDockerCompose collects the environment section of every service,
// in either map or KEY=VALUE list form
func parseDockerCompose(data []byte) *Vars {
	vars := newVars()

	for _, doc := range decodeDocuments(data) {
		services := mappingValue(doc, "services")
		if services == nil || services.Kind != yaml.MappingNode {
			continue
		}
		for i := 1; i < len(services.Content); i += 2 {
			env := mappingValue(services.Content[i], "environment")
			if env == nil {
				continue
			}
			switch env.Kind {
			case yaml.MappingNode:
				for j := 0; j+1 < len(env.Content); j += 2 {
					vars.set(env.Content[j].Value, scalarValue(env.Content[j+1]))
				}
			case yaml.SequenceNode:
				for _, item := range env.Content {
					key, value, _ := strings.Cut(scalarValue(item), "=")
					if key = strings.TrimSpace(key); key != "" {
						vars.set(key, strings.TrimSpace(value))
					}
				}
			}
		}
	}

	return vars
}

// parseK8s reads the data of ConfigMap and Secret objects. Secret data is
// base64 decoded; stringData is taken as is.
func parseK8s(data []byte) *Vars {
	vars := newVars()

	for _, doc := range decodeDocuments(data) {
		switch scalarValue(mappingValue(doc, "kind")) {
		case "ConfigMap":
			eachPair(mappingValue(doc, "data"), vars.set)
		case "Secret":
			eachPair(mappingValue(doc, "data"), func(k, v string) {
				if decoded, err := base64.StdEncoding.DecodeString(v); err == nil {
					v = string(decoded)
				}
				vars.set(k, v)
			})
			eachPair(mappingValue(doc, "stringData"), vars.set)
		}
	}

	return vars
}

func eachPair(node *yaml.Node, fn func(key, value string)) {
	if node == nil || node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		fn(node.Content[i].Value, scalarValue(node.Content[i+1]))
	}
}

var systemdEnvRegex = regexp.MustCompile(`^\s*Environment\s*=\s*(.+)$`)

// parseSystemd parses Environment=KEY=value lines of a systemd unit
func parseSystemd(content string) *Vars {
	vars := newVars()

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		matches := systemdEnvRegex.FindStringSubmatch(line)
		if len(matches) != 2 {
			continue
		}
		assignment := trimQuotes(strings.TrimSpace(matches[1]))
		key, value, ok := strings.Cut(assignment, "=")
		if !ok {
			continue
		}
		if key = strings.TrimSpace(key); key != "" {
			vars.set(key, strings.TrimSpace(value))
		}
	}

	return vars
}
