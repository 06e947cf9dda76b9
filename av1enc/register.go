package av1enc

import "github.com/cocosip/go-tinyavif/codec"

func init() {
	codec.Register(NewCodec())
}
