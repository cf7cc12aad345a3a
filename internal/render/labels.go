package render

// Labels are the fixed user-visible strings the renderers emit.
type Labels struct {
	Loading       string `yaml:"loading" koanf:"loading"`
	LoadFailed    string `yaml:"load_failed" koanf:"load_failed"`
	NoData        string `yaml:"no_data" koanf:"no_data"`
	NoDescription string `yaml:"no_description" koanf:"no_description"`
	AllSources    string `yaml:"all_sources" koanf:"all_sources"`
	UpdatedPrefix string `yaml:"updated_prefix" koanf:"updated_prefix"`
}

// DefaultLabels returns the English label set.
func DefaultLabels() Labels {
	return Labels{
		Loading:       "Loading data",
		LoadFailed:    "Failed to load data, please try again later",
		NoData:        "No data",
		NoDescription: "No description",
		AllSources:    "All",
		UpdatedPrefix: "Last updated: ",
	}
}

// WithDefaults fills empty labels from DefaultLabels.
func (l Labels) WithDefaults() Labels {
	d := DefaultLabels()
	if l.Loading == "" {
		l.Loading = d.Loading
	}
	if l.LoadFailed == "" {
		l.LoadFailed = d.LoadFailed
	}
	if l.NoData == "" {
		l.NoData = d.NoData
	}
	if l.NoDescription == "" {
		l.NoDescription = d.NoDescription
	}
	if l.AllSources == "" {
		l.AllSources = d.AllSources
	}
	if l.UpdatedPrefix == "" {
		l.UpdatedPrefix = d.UpdatedPrefix
	}
	return l
}
