// Package workflow implements the encrypt/decrypt panels as plain state:
// upload slots, the submit state machine, artifact downloads and result
// presentation. Rendering (Render) is a pure function of that state, the
// active locale and the clock, so front ends only translate user input into
// calls on Slot, Executor, Downloader and Presenter and print the View.
package workflow
