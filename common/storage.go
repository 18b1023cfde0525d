package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/interop/util"
)

// SetSerialized serializes data and puts it into contract storage.
func SetSerialized(ctx storage.Context, key interface{}, value interface{}) {
	data := std.Serialize(value)
	storage.Put(ctx, key, data)
}

// NextID increments the integer counter stored by key and returns its new
// value. The first returned identifier is 1. Identifiers are never reused:
// deleting the numbered record does not roll the counter back.
func NextID(ctx storage.Context, key string) int {
	id := 1
	data := storage.Get(ctx, key)
	if data != nil {
		id = data.(int) + 1
	}

	storage.Put(ctx, key, id)
	return id
}

// BytesEqual compares two slice of bytes by wrapping them into strings,
// which is necessary with new util.Equal interop behaviour, see neo-go#1176.
func BytesEqual(a []byte, b []byte) bool {
	return util.Equals(string(a), string(b))
}
