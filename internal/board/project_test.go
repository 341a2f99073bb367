package board

import (
    "testing"

    "github.com/stretchr/testify/assert"

    "github.com/ryochana/toh-jeen-npc-68v5/internal/floorplan"
    "github.com/ryochana/toh-jeen-npc-68v5/internal/model"
)

func TestProject_JoinsBookingsToTables(t *testing.T) {
    tables := floorplan.Generate()
    bookings := []model.Booking{
        {OrderNumber: 1, GuestName: "สมชาย", PartySize: 8, TableNumbers: []int{5}, RawStatus: "จ่ายแล้ว"},
        {OrderNumber: 2, GuestName: "สมหญิง", PartySize: 10, TableNumbers: []int{7, 8, 9}},
    }

    rows := Project(tables, bookings)

    assert.Len(t, rows, floorplan.OutsideMax)

    r5 := rows[4]
    assert.True(t, r5.Booked)
    assert.Equal(t, model.PaymentPaid, r5.Payment)
    assert.Equal(t, 8, r5.PartyShare)
    assert.Equal(t, "สมชาย", r5.Booking.GuestName)

    assert.False(t, rows[0].Booked)
    assert.Nil(t, rows[0].Booking)
    assert.Equal(t, model.PaymentBooked, rows[0].Payment)
}

func TestProject_CeilingDistribution(t *testing.T) {
    tables := floorplan.Generate()
    bookings := []model.Booking{
        {OrderNumber: 1, GuestName: "a", PartySize: 10, TableNumbers: []int{1, 2, 3}},
    }

    rows := Project(tables, bookings)

    sum := 0
    for _, n := range []int{1, 2, 3} {
        share := rows[n-1].PartyShare
        assert.Equal(t, 4, share) // ceil(10/3)
        sum += share
    }
    assert.GreaterOrEqual(t, sum, 10)
}

func TestProject_FirstBookingWinsDuplicateTable(t *testing.T) {
    tables := floorplan.Generate()
    bookings := []model.Booking{
        {OrderNumber: 7, GuestName: "first", TableNumbers: []int{3}, PartySize: 4},
        {OrderNumber: 8, GuestName: "second", TableNumbers: []int{3}, PartySize: 6},
    }

    rows := Project(tables, bookings)

    assert.Equal(t, "first", rows[2].Booking.GuestName)
}

func TestPaymentStateOf_FailsOpenToBooked(t *testing.T) {
    assert.Equal(t, model.PaymentPaid, model.PaymentStateOf("จ่ายแล้ว 500"))
    assert.Equal(t, model.PaymentPaid, model.PaymentStateOf("PAID"))
    assert.Equal(t, model.PaymentBooked, model.PaymentStateOf(""))
    assert.Equal(t, model.PaymentBooked, model.PaymentStateOf("มัดจำ"))
}

func TestCount_Tallies(t *testing.T) {
    tables := floorplan.Generate()
    bookings := []model.Booking{
        {OrderNumber: 1, GuestName: "a", TableNumbers: []int{1}, RawStatus: "จ่ายแล้ว"},
        {OrderNumber: 2, GuestName: "b", TableNumbers: []int{2, 3}},
    }

    tally := Count(Project(tables, bookings))

    assert.Equal(t, floorplan.OutsideMax, tally.Total)
    assert.Equal(t, 1, tally.Paid)
    assert.Equal(t, 2, tally.Booked)
    assert.Equal(t, floorplan.OutsideMax-3, tally.Empty)
}

func TestNextOrderNumber(t *testing.T) {
    assert.Equal(t, 1, NextOrderNumber(nil))
    assert.Equal(t, 12, NextOrderNumber([]model.Booking{
        {OrderNumber: 3}, {OrderNumber: 11}, {OrderNumber: 4},
    }))
}
