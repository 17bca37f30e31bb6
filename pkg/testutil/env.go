package testutil

import (
	"path/filepath"
	"runtime"

	"github.com/subosito/gotenv"

	"github.com/Bnei-Baruch/kvo/common"
)

func init() {
	_, filename, _, _ := runtime.Caller(0)
	rel := filepath.Join(filepath.Dir(filename), "..", "..", common.DefaultEnvFile)
	gotenv.Load(rel)
	common.Init()
}
