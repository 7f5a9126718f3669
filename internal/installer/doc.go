// Package installer handles the install/enable lifecycle of PHP
// debugging extensions.
//
// Three cooperating pieces:
//
//   - Advisor produces the OS- and package-manager-appropriate install
//     command and human-readable instructions for an extension. It is
//     pure advice and never executes anything.
//   - Installer executes the advisor's command as a subprocess,
//     streaming stdout line-by-line and returning a structured Result.
//   - Service is the readiness state machine: given a driver and a UI
//     (confirm + output callbacks), it decides whether the extension is
//     already usable, needs enabling, or needs installing, and drives
//     the Advisor and Installer accordingly.
//
// The Service never returns a Go error; every branch produces an
// Outcome for the caller to render, including restart-required
// conditions, which are surfaced as data and never acted on.
package installer
