// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/imagex"
)

// GrayPalette is the 256 level gray palette used for animated GIF frames.
var GrayPalette = func() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.Gray{uint8(i)}
	}
	return p
}()

// Save saves the frames to the given file. A .gif file is saved as an
// animation of all frames with the given delay between frames, in
// 100ths of a second. Any other format supported by [imagex.Save]
// saves only the first frame.
func Save(frames []*image.RGBA, filename string, delay int) error {
	if len(frames) == 0 {
		return errors.New("raster.Save: no frames to save")
	}
	if strings.ToLower(filepath.Ext(filename)) == ".gif" {
		return SaveGIF(frames, filename, delay)
	}
	return imagex.Save(frames[0], filename)
}

// SaveGIF saves the frames as a looping animated GIF, mapped onto [GrayPalette].
func SaveGIF(frames []*image.RGBA, filename string, delay int) (err error) {
	anim := &gif.GIF{}
	for _, fr := range frames {
		pm := image.NewPaletted(fr.Bounds(), GrayPalette)
		draw.Draw(pm, pm.Rect, fr, fr.Bounds().Min, draw.Src)
		anim.Image = append(anim.Image, pm)
		anim.Delay = append(anim.Delay, delay)
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return gif.EncodeAll(f, anim)
}
