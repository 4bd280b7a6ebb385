// SPDX-License-Identifier: MIT

// Package render presents generated text as HTML or plain text.
//
// HTML reproduces the classic demo page layout: every sentence after the
// first starts on a new line (". " becomes ".<br>") and the whole text sits
// in a single styled paragraph. Document wraps that paragraph in a minimal
// HTML page. Text is always escaped; only the line breaks are markup.
package render
