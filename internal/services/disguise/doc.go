// Package disguise implements the calculator keypad that hides the app.
//
// A Machine accumulates digits in a buffer that always shows at least "0".
// Evaluating the buffer either unlocks the hidden view (unlock code), fires a
// silent alert while staying locked (duress code), or simply resets. Nothing
// here is persisted; a restart always comes up locked.
package disguise
