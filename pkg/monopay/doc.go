// Package monopay is a client for the monobank acquiring API.
//
// A Client holds the token and transport configuration and exposes one method per endpoint,
// each returning the decoded JSON object. Merchant and Invoice wrap those calls with the
// checks the gateway's contract implies and keep the latest representation in a generic
// field store:
//
//	client, err := monopay.New(token, monopay.WithPlatform("shop"), monopay.WithReceiptEmail("ops@example.com"))
//	if err != nil {
//		return err
//	}
//	inv, err := monopay.NewInvoice(client).Create(ctx, monopay.Params{"amount": 4200, "ccy": 980})
//	if err != nil {
//		return err
//	}
//	redirect := inv.PageURL()
//
// Every error is a *Error; use errors.Is with the Err* sentinels or KindOf to branch on it.
package monopay
