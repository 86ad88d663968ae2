package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math/rand"
	"strings"
	"time"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	swipe "git.sr.ht/~gioverse/swipe"
	swipelayout "git.sr.ht/~gioverse/swipe/layout"
	"git.sr.ht/~gioverse/swipe/machine"
	swipewidget "git.sr.ht/~gioverse/swipe/widget"
	swipematerial "git.sr.ht/~gioverse/swipe/widget/material"
	lorem "github.com/drhodes/golorem"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

// Type alias common layout types for legibility.
type (
	C = layout.Context
	D = layout.Dimensions
)

// ToNRGBA converts a colorful.Color to the nearest representable color.NRGBA.
func ToNRGBA(c colorful.Color) color.NRGBA {
	r, g, b, a := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

var (
	// UnreadIcon marks messages that have not been read.
	UnreadIcon *widget.Icon = func() *widget.Icon {
		icon, _ := widget.NewIcon(icons.ContentMail)
		return icon
	}()
	// ReadIcon marks messages that have been read.
	ReadIcon *widget.Icon = func() *widget.Icon {
		icon, _ := widget.NewIcon(icons.ContentDrafts)
		return icon
	}()
	// FlagIcon marks flagged messages.
	FlagIcon *widget.Icon = func() *widget.Icon {
		icon, _ := widget.NewIcon(icons.ContentFlag)
		return icon
	}()
)

// palette of the action buttons.
var palette = struct {
	Read, Flag, Delete, Divider color.NRGBA
}{
	Read:    ToNRGBA(colorful.Hsv(210, 0.7, 0.85)),
	Flag:    ToNRGBA(colorful.Hsv(35, 0.85, 0.95)),
	Delete:  ToNRGBA(colorful.Hsv(0, 0.75, 0.85)),
	Divider: color.NRGBA{A: 30},
}

// Mail is a message in the inbox.
type Mail struct {
	id                     string
	From, Subject, Preview string
	At                     time.Time
	Read, Flagged          bool
	// Tint is the background of the sender's avatar.
	Tint color.NRGBA
}

// ID implements swipe.Row.
func (m *Mail) ID() swipe.RowID {
	return swipe.RowID(m.id)
}

// Generate n messages of placeholder content, newest first.
func Generate(n int) []*Mail {
	var (
		now   = time.Now()
		mails = make([]*Mail, n)
	)
	for i := range mails {
		mails[i] = &Mail{
			id:      fmt.Sprintf("mail-%d", i),
			From:    lorem.Word(3, 10),
			Subject: strings.Trim(lorem.Sentence(2, 6), "."),
			Preview: lorem.Sentence(5, 12),
			At:      now.Add(-time.Duration(i) * 37 * time.Minute),
			Read:    rand.Intn(3) == 0,
			Tint:    ToNRGBA(colorful.FastHappyColor().Clamped()),
		}
	}
	return mails
}

// UI is the inbox application.
type UI struct {
	th         *material.Theme
	list       widget.List
	rows       *swipe.RowManager
	mails      []*Mail
	deleted    map[*Mail]bool
	invalidate func()
}

// NewUI presents mails. invalidate requests a new frame.
func NewUI(mails []*Mail, invalidate func()) *UI {
	ui := &UI{
		th:         material.NewTheme(gofont.Collection()),
		list:       widget.List{List: layout.List{Axis: layout.Vertical}},
		deleted:    make(map[*Mail]bool),
		invalidate: invalidate,
	}
	ui.rows = swipe.NewManager(ui.configure, ui.present)
	ui.setMails(mails)
	return ui
}

func (ui *UI) setMails(mails []*Mail) {
	ui.mails = mails
	rows := make([]swipe.Row, len(mails))
	for i, m := range mails {
		rows[i] = m
	}
	ui.rows.Rows = rows
	ui.rows.Prune()
}

// Delete removes m from the inbox before the next frame. Rows are not removed
// immediately because the list may be in the middle of laying them out.
func (ui *UI) Delete(m *Mail) {
	ui.deleted[m] = true
	if ui.invalidate != nil {
		ui.invalidate()
	}
}

// flush applies pending deletions.
func (ui *UI) flush() {
	if len(ui.deleted) == 0 {
		return
	}
	kept := make([]*Mail, 0, len(ui.mails))
	for _, m := range ui.mails {
		if !ui.deleted[m] {
			kept = append(kept, m)
		}
	}
	for m := range ui.deleted {
		delete(ui.deleted, m)
	}
	ui.setMails(kept)
}

// Layout the inbox.
func (ui *UI) Layout(gtx C) D {
	ui.flush()
	return material.List(ui.th, &ui.list).Layout(gtx, ui.rows.Len(), ui.rows.Layout)
}

// configure installs the actions of mail onto state.
func (ui *UI) configure(r swipe.Row, state *swipewidget.SwipeRow) {
	mail := r.(*Mail)
	state.Delegate = inboxDelegate{mail: mail}
	if err := state.SetThresholds(thresholds); err != nil {
		log.Printf("configuring %s: %v", mail.id, err)
	}
	read := swipewidget.NewActionButton("Read", palette.Read, func(_ *swipewidget.ActionButton, row *swipewidget.SwipeRow) {
		mail.Read = !mail.Read
		closeRow(row)
	})
	flagged := swipewidget.NewActionButton("Flag", palette.Flag, func(_ *swipewidget.ActionButton, row *swipewidget.SwipeRow) {
		mail.Flagged = !mail.Flagged
		closeRow(row)
	})
	remove := swipewidget.NewActionButton("Delete", palette.Delete, func(*swipewidget.ActionButton, *swipewidget.SwipeRow) {
		ui.Delete(mail)
	})
	if err := state.AddButtons([]*swipewidget.ActionButton{read}, swipewidget.Left); err != nil {
		log.Printf("configuring %s: %v", mail.id, err)
	}
	if err := state.AddButtonsWidth([]*swipewidget.ActionButton{flagged, remove}, unit.Dp(72), swipewidget.Right); err != nil {
		log.Printf("configuring %s: %v", mail.id, err)
	}
}

// closeRow returns row to rest after one of its actions ran, animating out of
// a committed pin.
func closeRow(row *swipewidget.SwipeRow) {
	if row.State() == machine.Pinned {
		row.CompletePin()
		return
	}
	row.Reset()
}

// present the foreground of mail within its swipe row.
func (ui *UI) present(r swipe.Row, state *swipewidget.SwipeRow) layout.Widget {
	mail := r.(*Mail)
	return func(gtx C) D {
		return swipelayout.Divider(palette.Divider).Layout(gtx, func(gtx C) D {
			return swipematerial.SwipeRow(ui.th, state, func(gtx C) D {
				return ui.layoutMail(gtx, mail)
			}).Layout(gtx)
		})
	}
}

func (ui *UI) layoutMail(gtx C, mail *Mail) D {
	weight := text.Bold
	icon := UnreadIcon
	if mail.Read {
		weight = text.Normal
		icon = ReadIcon
	}
	return layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx C) D {
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				size := gtx.Dp(unit.Dp(36))
				gtx.Constraints = layout.Exact(image.Pt(size, size))
				return swipelayout.Rounded(18).Layout(gtx, func(gtx C) D {
					return swipelayout.Surface(mail.Tint).Layout(gtx, func(gtx C) D {
						return layout.UniformInset(unit.Dp(6)).Layout(gtx, func(gtx C) D {
							return icon.Layout(gtx, swipematerial.Contrast(mail.Tint))
						})
					})
				})
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
			layout.Flexed(1, func(gtx C) D {
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
					layout.Rigid(func(gtx C) D {
						return layout.Flex{Alignment: layout.Baseline}.Layout(gtx,
							layout.Flexed(1, func(gtx C) D {
								l := material.Body1(ui.th, mail.From)
								l.Font.Weight = weight
								l.MaxLines = 1
								return l.Layout(gtx)
							}),
							layout.Rigid(func(gtx C) D {
								if !mail.Flagged {
									return D{}
								}
								gtx.Constraints.Min.X = gtx.Dp(unit.Dp(16))
								return FlagIcon.Layout(gtx, palette.Flag)
							}),
							layout.Rigid(material.Caption(ui.th, mail.At.Format("15:04")).Layout),
						)
					}),
					layout.Rigid(func(gtx C) D {
						l := material.Body2(ui.th, mail.Subject)
						l.Font.Weight = weight
						l.MaxLines = 1
						return l.Layout(gtx)
					}),
					layout.Rigid(func(gtx C) D {
						l := material.Caption(ui.th, mail.Preview)
						l.MaxLines = 1
						return l.Layout(gtx)
					}),
				)
			}),
		)
	})
}

// inboxDelegate logs the progress of swipes on a mail row.
type inboxDelegate struct {
	mail *Mail
}

func (d inboxDelegate) LeftMostButtonSwipeCompleted(*swipewidget.SwipeRow) {
	log.Printf("%s: marked read=%v by swipe", d.mail.id, d.mail.Read)
}

func (d inboxDelegate) RightMostButtonSwipeCompleted(*swipewidget.SwipeRow) {
	log.Printf("%s: deleted by swipe", d.mail.id)
}

func (d inboxDelegate) SwipingRight(*swipewidget.SwipeRow) {
	log.Printf("%s: swiping right", d.mail.id)
}

func (d inboxDelegate) SwipingLeft(*swipewidget.SwipeRow) {
	log.Printf("%s: swiping left", d.mail.id)
}
