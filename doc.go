// SPDX-License-Identifier: EPL-2.0

// Package audiorw reads and writes audio files of unknown type without
// per-format code.
//
// Given an uninterpreted byte source, the package determines which
// container format it holds, exposes a uniform interleaved float32 frame
// stream over it, and performs chunked, cancellable, abort-safe
// transcoding into an output container with integer or float sample
// storage.
//
// # Supported Formats
//
// The catalog is a closed set of four container formats:
//   - FLAC (lossless compressed, dedicated backend) via formats/flac
//   - MP3 (lossy, decode-only) via formats/mp3
//   - Ogg Vorbis (lossy, decode-only) via formats/vorbis
//   - WAV (uncompressed) via formats/wav
//
// # Quick Start
//
// Reading a whole file into memory:
//
//	hint, _ := audiorw.MakeFormatHint("music.flac", true)
//	item, err := audiorw.ReadFile("music.flac", hint, nil)
//	if err != nil {
//	    // handle
//	}
//	// item.Header describes the stream, item.Frames holds one
//	// []float32 per channel.
//
// Writing it back out with 16-bit integer storage:
//
//	item.Header.Format = audio.FormatWAV // retarget the container
//	item.Header.BitDepth = 16
//	err = audiorw.WriteFile(item, "out.wav", audio.StorageInt, nil)
//
// # Format Probing
//
// A FormatHint orders the probe candidates. The extension gives a cheap,
// usually-correct first guess; the fallback order exists because
// extensions can be wrong or absent. Probing tries each candidate in
// order, rewinding the input between attempts, and stops at the first
// backend that parses a header. Only when every candidate fails does the
// operation fail with audio.ErrUnknownFormat.
//
// # Incremental Decoding
//
// OpenFile and OpenBytes return a Stream for demand-driven decoding:
//
//	s, err := audiorw.OpenFile("take.ogg", audiorw.TryFirst(audio.FormatOGG))
//	if err != nil {
//	    // handle
//	}
//	defer s.Close()
//	buf := make([]float32, 4096*s.Header().Channels)
//	for {
//	    n, err := s.ReadFrames(buf)
//	    if n == 0 || err != nil {
//	        break
//	    }
//	    // consume buf[:n*channels]
//	}
//
// # Cancellation
//
// Every transfer accepts a ShouldAbort predicate, polled once per chunk of
// at most 16384 frames. A nil predicate never aborts. When the predicate
// fires, the transfer returns audio.ErrAborted and the output is
// discarded: output files are committed atomically (write to "<dest>.tmp",
// rename on commit), so an aborted or failed write never leaves partial
// content at the destination path.
//
// All operations are synchronous and single-threaded; use independent
// streams and writers for parallel conversions.
package audiorw
