// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

// colorizeDone records that lines st through ed were recolored,
// to be reported to ColorizeDoneFunc by unlock.
func (ls *Lines) colorizeDone(st, ed int) {
	if ls.doneSt < 0 {
		ls.doneSt, ls.doneEd = st, ed
		return
	}
	ls.doneSt = min(ls.doneSt, st)
	ls.doneEd = max(ls.doneEd, ed)
}

// unlock unlocks the Lines and then calls ColorizeDoneFunc
// for any lines recolored while it was locked, so that the function
// can call back into the Lines.
func (ls *Lines) unlock() {
	st, ed := ls.doneSt, min(ls.doneEd, ls.numLines()-1)
	ls.doneSt = -1
	fun := ls.ColorizeDoneFunc
	ls.Unlock()
	if st >= 0 && st <= ed && fun != nil {
		fun(st, ed)
	}
}
