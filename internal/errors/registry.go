package errors

// Registered error codes.
const (
	CodeUseAfterDispose        = "W001"
	CodeCyclicUpdate           = "W002"
	CodeInvalidAttributeDecode = "W003"
	CodeMissingContext         = "W004"
	CodeComponentPanic         = "W005"
	CodeDuplicateElement       = "W006"
	CodeInvalidElementName     = "W007"
	CodeConfigInvalid          = "W010"
)

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Explain  string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	CodeUseAfterDispose: {
		Category: CategoryRuntime,
		Message:  "use after dispose",
		Explain:  "A signal, effect or component was used after its owner tore it down. This usually means a closure outlived the component that created it.",
	},
	CodeCyclicUpdate: {
		Category: CategoryRuntime,
		Message:  "cyclic update",
		Explain:  "Effects kept writing signals that re-triggered them and the flush did not converge within the configured number of passes.",
	},
	CodeInvalidAttributeDecode: {
		Category: CategoryAttribute,
		Message:  "invalid attribute value",
		Explain:  "An attribute value could not be decoded with the type hint of the prop it maps to. The prop keeps its previous value.",
	},
	CodeMissingContext: {
		Category: CategoryRuntime,
		Message:  "missing context",
		Explain:  "No Provider for the context was found among the ancestors, the context default is in effect.",
	},
	CodeComponentPanic: {
		Category: CategoryRender,
		Message:  "component failed",
		Explain:  "A component body panicked or returned an error while its subtree was being built. The subtree was discarded.",
	},
	CodeDuplicateElement: {
		Category: CategoryRegistry,
		Message:  "custom element already registered",
		Explain:  "A tag name can be registered only once per registry.",
	},
	CodeInvalidElementName: {
		Category: CategoryRegistry,
		Message:  "invalid custom element name",
		Explain:  "Custom element names must be non-empty, lower case and contain a hyphen.",
	},
	CodeConfigInvalid: {
		Category: CategoryConfig,
		Message:  "invalid configuration",
		Explain:  "The configuration file could not be parsed or failed validation.",
	},
}

// Explain returns the long explanation registered for code.
func Explain(code string) string {
	return registry[code].Explain
}
