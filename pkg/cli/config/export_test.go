package config

// NewGeminiForTest creates a Gemini config with the given values for testing
func NewGeminiForTest(projectID, location string) *Gemini {
	return &Gemini{
		projectID: projectID,
		location:  location,
	}
}

// NewRepositoryForTest creates a Repository config with the given values for testing
func NewRepositoryForTest(backend, projectID, databaseID string) *Repository {
	return &Repository{
		backend:    backend,
		projectID:  projectID,
		databaseID: databaseID,
	}
}

// NewSafetyForTest creates a Safety config with the given values for testing
func NewSafetyForTest(denyOnError bool, extraTerms []string) *Safety {
	return &Safety{
		denyOnError: denyOnError,
		extraTerms:  extraTerms,
	}
}

// NewCatalogForTest creates a Catalog config with the given path for testing
func NewCatalogForTest(path string) *Catalog {
	return &Catalog{path: path}
}
