// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

// Package officemedia extracts embedded media (images, audio, video) from Office
// documents. Microsoft Office (OOXML) and LibreOffice (ODF) documents are ZIP
// archives internally; the media they embed lives below folders called "media"
// or "Pictures".
//
// Every input is processed in three steps. [Validate] rejects unsupported or
// unreadable inputs, [Locate] selects the media entries from the archive's
// entry listing and [ExtractAll] writes them to a per-document output folder and
// returns a [Summary] of the extracted file types. [Extract] drives these steps
// over one or many inputs described by a [Source].
//
// Configuration is done using the [Config], which is built with [NewConfig] and
// adjusted with option functions, e.g. to set the logger, the telemetry hook or
// the extraction limits. Telemetry data is captured per input and handed to the
// configured [TelemetryHook].
package officemedia
