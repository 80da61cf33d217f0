// Package packet implements the HailNet authenticated datagram format.
//
// Wire layout, fixed offsets, no prefixes or delimiters:
//
//	offset 0..16   MAC      16 bytes (HMAC-SHA256 truncated)
//	offset 16..22  NodeID    6 bytes
//	offset 22..    Payload   N bytes (N >= 0)
//
// The MAC covers NodeID || Payload. Structure (Decode/Parse) and
// authenticity (Validate) are deliberately separate: a decoded packet is
// untrusted until ParseAndValidate has accepted it.  Rejections of
// untrusted input never carry a reason; malformed and forged datagrams are
// indistinguishable to the caller.
package packet
