/*
Package pngchunk implements reading, editing and writing of the chunk stream
inside PNG files.

A PNG file is the fixed 8 byte signature followed by chunks. Each chunk is a
big-endian length, a four letter type, the payload and a CRC-32 over type and
payload. Parse validates the signature, every chunk type and every CRC, and
Bytes re-serializes the chunk sequence losslessly.

The package focuses on practical workflows: hide a text message in a custom
chunk, read it back, remove it, or list what a file carries. Messages may
optionally be stored LZ4 compressed. Pixel data is never decoded.
*/
package pngchunk
