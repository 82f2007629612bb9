// Package objspec parses and validates Plastic SCM object specifiers.
//
// An object spec is a kind prefix followed by an identifier: "br:" names a
// branch and "cs:" names a changeset. [Validate] checks a [Request] built
// from the command line and reports problems as a [*ValidationError], which
// carries whether the problem must stop the run.
package objspec
