// Package ui contains the Bubble Tea front-end for lineedit. It drives the
// same menu definitions as the line-mode console, rendered as a navigable
// list with inline editing and filename forms.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Key presses go to the active mode first: the editing input, or the
//     save/load filename form. In menu mode they fall through to a typed
//     handler registry so each tea.Msg is handled by a focused function.
//   - Save and load run as commands through internal/ui/command. The command
//     receives a snapshot of the document and answers with a
//     menu.ActionResult, which Update applies.
//
// State ownership:
//   - The document is owned by the caller and passed in; only Update mutates
//     it, so commands never race with edits.
//   - Menu cursor state lives in internal/ui/state.Level, filename
//     suggestions in internal/ui/state.Suggestions.
package ui
