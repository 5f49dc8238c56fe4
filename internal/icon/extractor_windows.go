//go:build windows

package icon

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"unsafe"

	"github.com/lxn/win"
	lnk "github.com/parsiya/golnk"
	"golang.org/x/sys/windows"
)

var (
	user32             = windows.NewLazySystemDLL("user32.dll")
	gdi32              = windows.NewLazySystemDLL("gdi32.dll")
	shell32            = windows.NewLazySystemDLL("shell32.dll")
	procDrawIconEx     = user32.NewProc("DrawIconEx")
	procCreateDIB      = gdi32.NewProc("CreateDIBSection")
	procExtractIconExW = shell32.NewProc("ExtractIconExW")
)

// platformExtract resolves an icon through the Windows shell. Shortcuts
// are followed to their target first; then ExtractIconEx on the file
// itself, then the shell file-association icon.
func platformExtract(path string, size int) (image.Image, error) {
	target, iconPath, iconIdx := resolveTarget(path)

	var attempts []error

	if iconPath != "" {
		if hIcon, err := extractIconHandle(iconPath, iconIdx); err == nil {
			return iconHandleToImage(hIcon, size)
		} else {
			attempts = append(attempts, err)
		}
	}

	if hIcon, err := extractIconHandle(target, 0); err == nil {
		return iconHandleToImage(hIcon, size)
	} else {
		attempts = append(attempts, err)
	}

	if hIcon, err := shellFileIcon(target, size); err == nil {
		return iconHandleToImage(hIcon, size)
	} else {
		attempts = append(attempts, err)
	}

	return nil, errors.Join(attempts...)
}

// resolveTarget follows a .lnk shortcut to its real target and icon
// location. Non-shortcuts resolve to themselves.
func resolveTarget(path string) (target, iconPath string, iconIdx int) {
	target = strings.Trim(path, `"`)
	if !strings.EqualFold(filepath.Ext(target), ".lnk") {
		return target, target, 0
	}

	f, err := lnk.File(target)
	if err != nil {
		return target, target, 0
	}

	resolved := ""
	if f.LinkInfo.LocalBasePath != "" {
		resolved = f.LinkInfo.LocalBasePath
		if f.LinkInfo.CommonPathSuffix != "" {
			resolved = filepath.Join(resolved, f.LinkInfo.CommonPathSuffix)
		}
	} else if f.StringData.NameString != "" && filepath.IsAbs(f.StringData.NameString) {
		resolved = f.StringData.NameString
	}
	if resolved == "" {
		return target, target, 0
	}
	resolved = os.ExpandEnv(resolved)

	iconPath = resolved
	if f.StringData.IconLocation != "" {
		iconPath = os.ExpandEnv(f.StringData.IconLocation)
	}
	return resolved, iconPath, int(f.Header.IconIndex)
}

func extractIconHandle(path string, index int) (win.HICON, error) {
	if path == "" {
		return 0, errors.New("empty path")
	}

	fullPath := path
	if !strings.HasPrefix(path, `\\?\`) && len(path) > 260 {
		fullPath = `\\?\` + path
	}

	pPath, err := syscall.UTF16PtrFromString(fullPath)
	if err != nil {
		return 0, err
	}

	var largeIcon, smallIcon win.HICON
	ret, _, _ := procExtractIconExW.Call(
		uintptr(unsafe.Pointer(pPath)),
		uintptr(index),
		uintptr(unsafe.Pointer(&largeIcon)),
		uintptr(unsafe.Pointer(&smallIcon)),
		1,
	)

	if ret == 0 || (largeIcon == 0 && smallIcon == 0) {
		return 0, fmt.Errorf("ExtractIconExW found no icon in %s (index %d)", path, index)
	}

	if largeIcon != 0 {
		if smallIcon != 0 {
			win.DestroyIcon(smallIcon)
		}
		return largeIcon, nil
	}
	return smallIcon, nil
}

func shellFileIcon(path string, size int) (win.HICON, error) {
	if path == "" {
		return 0, errors.New("empty path")
	}

	pPath, err := syscall.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}

	sizeFlag := uint32(win.SHGFI_LARGEICON)
	if size <= 24 {
		sizeFlag = win.SHGFI_SMALLICON
	}

	var shfi win.SHFILEINFO
	flags := uint32(win.SHGFI_ICON|win.SHGFI_USEFILEATTRIBUTES) | sizeFlag
	ret := win.SHGetFileInfo(pPath, 0x80, &shfi, uint32(unsafe.Sizeof(shfi)), flags)
	if ret == 0 || shfi.HIcon == 0 {
		return 0, fmt.Errorf("SHGetFileInfo returned no icon for %s", path)
	}
	return shfi.HIcon, nil
}

// iconHandleToImage renders an HICON into an NRGBA image via a DIB
// section, then destroys the handle.
func iconHandleToImage(hIcon win.HICON, size int) (image.Image, error) {
	defer win.DestroyIcon(hIcon)

	if hIcon == 0 {
		return nil, errors.New("null icon handle")
	}

	var iconInfo win.ICONINFO
	if !win.GetIconInfo(hIcon, &iconInfo) {
		return nil, errors.New("GetIconInfo failed")
	}
	defer func() {
		if iconInfo.HbmColor != 0 {
			win.DeleteObject(win.HGDIOBJ(iconInfo.HbmColor))
		}
		if iconInfo.HbmMask != 0 {
			win.DeleteObject(win.HGDIOBJ(iconInfo.HbmMask))
		}
	}()

	width, height := size, size
	if iconInfo.HbmColor != 0 {
		var bmp win.BITMAP
		if win.GetObject(win.HGDIOBJ(iconInfo.HbmColor), unsafe.Sizeof(bmp), unsafe.Pointer(&bmp)) != 0 {
			width = int(bmp.BmWidth)
			height = int(bmp.BmHeight)
		}
	}

	hdcScreen := win.GetDC(0)
	if hdcScreen == 0 {
		return nil, errors.New("GetDC failed")
	}
	defer win.ReleaseDC(0, hdcScreen)

	hdcMem := win.CreateCompatibleDC(hdcScreen)
	if hdcMem == 0 {
		return nil, errors.New("CreateCompatibleDC failed")
	}
	defer win.DeleteDC(hdcMem)

	var bi win.BITMAPINFO
	bi.BmiHeader = win.BITMAPINFOHEADER{
		BiSize:        uint32(unsafe.Sizeof(win.BITMAPINFOHEADER{})),
		BiWidth:       int32(width),
		BiHeight:      int32(-height),
		BiPlanes:      1,
		BiBitCount:    32,
		BiCompression: win.BI_RGB,
	}

	var bitsPtr unsafe.Pointer
	hBitmap, _, callErr := procCreateDIB.Call(
		uintptr(hdcMem),
		uintptr(unsafe.Pointer(&bi)),
		uintptr(win.DIB_RGB_COLORS),
		uintptr(unsafe.Pointer(&bitsPtr)),
		0,
		0,
	)
	if hBitmap == 0 {
		return nil, fmt.Errorf("CreateDIBSection failed: %v", callErr)
	}
	defer win.DeleteObject(win.HGDIOBJ(hBitmap))

	oldObj := win.SelectObject(hdcMem, win.HGDIOBJ(hBitmap))
	defer win.SelectObject(hdcMem, oldObj)

	ret, _, _ := procDrawIconEx.Call(
		uintptr(hdcMem),
		0,
		0,
		uintptr(hIcon),
		uintptr(width),
		uintptr(height),
		0,
		0,
		uintptr(win.DI_NORMAL),
	)
	if ret == 0 {
		return nil, errors.New("DrawIconEx failed")
	}

	byteLen := width * height * 4
	raw := unsafe.Slice((*byte)(bitsPtr), byteLen)
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	// DIB rows are BGRA; swizzle into NRGBA.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 4
			img.SetNRGBA(x, y, color.NRGBA{R: raw[i+2], G: raw[i+1], B: raw[i], A: raw[i+3]})
		}
	}

	return img, nil
}
