package util

import (
	"bytes"
	"strconv"
)

// FlexID 兼容数字和字符串形式的 id 字段。
// 前端历史上两种形式都发过，比较前必须归一为整数。
type FlexID uint

func (f *FlexID) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseUint(string(b), 10, 32)
	if err != nil {
		return err
	}
	*f = FlexID(v)
	return nil
}

func (f FlexID) Uint() uint {
	return uint(f)
}
