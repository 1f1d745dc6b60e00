// Package terminal runs the interactive Iron Ring station terminal.
//
// A Terminal loops over login, the menu Navigator, and the exit question. It
// talks to the user through a Prompter and a Display; Console implements
// both on top of a character terminal.
package terminal
