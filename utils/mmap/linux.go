package mmap

import (
	"os"

	"golang.org/x/sys/unix"
)

// mmap 使用 mmap 系统调用来 memory-map 一个文件
func mmap(fd *os.File, writable bool, sz int64) ([]byte, error) {
	mtype := unix.PROT_READ
	if writable {
		mtype |= unix.PROT_WRITE
	}
	// MAP_SHARED 让映射直接引用页缓存中的文件页
	return unix.Mmap(int(fd.Fd()), 0, int(sz), mtype, unix.MAP_SHARED)
}

func munmap(data []byte) error {
	return unix.Munmap(data)
}
