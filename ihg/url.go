package ihg

import (
	"fmt"
	"net/url"
	"time"
)

// bookingBaseURL is the consumer booking site redirect entry point.
const bookingBaseURL = "https://www.ihg.com/redirect"

// BookingPageURL builds the deep link into the consumer booking flow for one
// stay. Pure string formatting, no request is made.
//
// The redirect endpoint splits each date into a day-of-month field and a
// combined month+year field whose month is zero based.
func BookingPageURL(q BookingQuery) (string, error) {
	if err := validateHotelCode(q.HotelCode); err != nil {
		return "", err
	}
	checkIn, checkOut, adults, children, err := resolveStay(q.CheckIn, q.CheckOut, q.Adults, q.Children)
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("path", "rates")
	params.Set("localeCode", "en")
	params.Set("regionCode", "1")
	params.Set("hotelCode", q.HotelCode)
	params.Set("checkInDate", fmt.Sprintf("%02d", checkIn.Day()))
	params.Set("checkInMonthYear", monthYear(checkIn))
	params.Set("checkOutDate", fmt.Sprintf("%02d", checkOut.Day()))
	params.Set("checkOutMonthYear", monthYear(checkOut))
	params.Set("adultCount", fmt.Sprintf("%d", adults))
	params.Set("childCount", fmt.Sprintf("%d", children))

	return bookingBaseURL + "?" + params.Encode(), nil
}

func monthYear(t time.Time) string {
	return fmt.Sprintf("%02d%d", int(t.Month())-1, t.Year())
}
