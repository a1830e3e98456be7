package resolver

import "gopkg.in/yaml.v3"

// pkgdownYAML is the subset of a pkgdown.yml this resolver reads: the
// site's base url and its topic→relative-href index.
type pkgdownYAML struct {
	URL    string         `yaml:"url"`
	Topics []pkgdownTopic `yaml:"topics"`
}

// pkgdownTopic accepts any of the shapes real pkgdown.yml files use for
// naming a reference entry: a single "name", a single "topic", or a
// "topics" list sharing one href.
type pkgdownTopic struct {
	Name   string   `yaml:"name"`
	Topic  string   `yaml:"topic"`
	Topics []string `yaml:"topics"`
	Href   string   `yaml:"href"`
}

func parsePkgdownYAML(raw []byte) (baseURL string, topics map[string]string, err error) {
	var doc pkgdownYAML
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return "", nil, err
	}

	topics = make(map[string]string)
	for _, t := range doc.Topics {
		switch {
		case t.Name != "":
			topics[t.Name] = t.Href
		case t.Topic != "":
			topics[t.Topic] = t.Href
		case len(t.Topics) > 0:
			for _, name := range t.Topics {
				topics[name] = t.Href
			}
		}
	}
	return doc.URL, topics, nil
}
