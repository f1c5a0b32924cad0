// Package errors provides the coded error taxonomy used across woby.
//
// Every failure the runtime can report has a stable code that maps to:
//   - a category (runtime, render, attribute, registry, config, cli)
//   - a short message
//   - a longer explanation and an optional hint
//
// Errors compare by code, so a wrapped or annotated error still matches its
// sentinel with the standard library:
//
//	if errors.Is(err, reactive.ErrCyclicUpdate) {
//	    // the flush did not converge
//	}
//
// # Codes
//
//	W001  UseAfterDispose         runtime
//	W002  CyclicUpdate            runtime
//	W003  InvalidAttributeDecode  attribute
//	W004  MissingContext          runtime
//	W005  ComponentPanic          render
//	W006  DuplicateElement        registry
//	W007  InvalidElementName      registry
//	W010  ConfigInvalid           config
//
// # Terminal output
//
//	err := errors.New(errors.CodeCyclicUpdate).
//	    WithDetail("effect #12 wrote count on every pass").
//	    WithSuggestion("Guard the write with an equality check")
//	fmt.Print(err.Format())
package errors
