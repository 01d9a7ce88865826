package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *ReadmeGenError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ManifestNotFound(dir string) *ReadmeGenError {
	return New(CategoryConfig, SeverityFatal, "no manifest.json or manifest.toml in package directory").
		WithContext("path", dir)
}

func ManifestParseError(path string, cause error) *ReadmeGenError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "manifest parse failed").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *ReadmeGenError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Registry errors

func RegistryFileError(path string, cause error) *ReadmeGenError {
	return Wrap(cause, CategoryRegistry, SeverityFatal, "registry file missing or malformed").
		WithContext("path", path)
}

func UnknownAntifeature(key, app string) *ReadmeGenError {
	return New(CategoryRegistry, SeverityFatal, "antifeature key not present in global registry").
		WithContext("antifeature", key).
		WithContext("app", app)
}

func RegistryFetchError(url string, cause error) *ReadmeGenError {
	return WrapRetryable(cause, CategoryRegistry, SeverityWarning, "registry fetch failed").
		WithContext("url", url)
}

// Translation catalog errors

func TranslationsDirError(path string, cause error) *ReadmeGenError {
	return Wrap(cause, CategoryCatalog, SeverityFatal, "translations directory missing or unreadable").
		WithContext("path", path)
}

func CatalogParseError(path string, cause error) *ReadmeGenError {
	return Wrap(cause, CategoryCatalog, SeverityFatal, "translation catalog parse failed").
		WithContext("path", path)
}

// Generation errors

func TemplateError(name string, cause error) *ReadmeGenError {
	return Wrap(cause, CategoryTemplate, SeverityFatal, "template rendering failed").
		WithContext("template", name)
}

func WriteError(path string, cause error) *ReadmeGenError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "output write failed").
		WithContext("path", path)
}

// Internal errors

func InternalError(message string, cause error) *ReadmeGenError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
