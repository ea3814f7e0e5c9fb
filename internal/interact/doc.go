// Package interact holds the user-facing collaborators of a run: the
// pickers that turn a selection into folder or file paths, and the numbered
// prompts for merge order and convert mode.
//
// Every picker signals cancellation the same way: an empty result with a nil
// error. Callers treat that as a clean stop, never as a failure.
//
// Three pickers exist:
//   - StaticPicker returns paths given on the command line.
//   - PromptPicker asks on the terminal, one path per line.
//   - DialogPicker opens native dialogs; it needs a build with -tags gui.
package interact
