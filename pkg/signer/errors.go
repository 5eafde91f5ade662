package signer

import "errors"

var ErrInvalidKeyList = errors.New("signer.invalid_key_list")
