package rec

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

var (
	_ msgpack.CustomEncoder = Field{}
	_ msgpack.CustomDecoder = (*Field)(nil)
)

// EncodeMsgpack encodes an absent field as nil, a present one as a string.
func (f Field) EncodeMsgpack(enc *msgpack.Encoder) error {
	if !f.Valid {
		return enc.EncodeNil()
	}
	return enc.EncodeString(f.Text)
}

func (f *Field) DecodeMsgpack(dec *msgpack.Decoder) error {
	code, err := dec.PeekCode()
	if err != nil {
		return err
	}
	if code == msgpcode.Nil {
		*f = Field{}
		return dec.DecodeNil()
	}
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	*f = NewField(s)
	return nil
}

// WriteRecordsMsgpack writes the dataset in MessagePack format as an
// array stream.
func WriteRecordsMsgpack(w io.Writer, ds *Dataset) error {
	enc := msgpack.NewEncoder(w)
	if err := enc.EncodeArrayLen(len(ds.Records)); err != nil {
		return err
	}
	for i := range ds.Records {
		if err := enc.Encode(&ds.Records[i]); err != nil {
			return err
		}
	}
	return nil
}

// ReadRecordsMsgpack reads records encoded as an array and calls fn for
// each one.
func ReadRecordsMsgpack(r io.Reader, fn func(Record) error) error {
	dec := msgpack.NewDecoder(r)
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return nil
}
