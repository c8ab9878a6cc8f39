package oroch

import "errors"

// ErrCorruptInput is returned when an encoded blob is truncated or carries
// a tag or field value this package does not recognize.
var ErrCorruptInput = errors.New("oroch: corrupt input")

// ErrBufferTooSmall reports a destination that cannot hold the output. No
// function in this package returns it: Group.Decode fills exactly len(dst)
// values.
var ErrBufferTooSmall = errors.New("oroch: buffer too small")

// ErrInvalidArgument is returned when a caller passes an out-of-range
// argument, such as an out-of-bounds position or index.
var ErrInvalidArgument = errors.New("oroch: invalid argument")
