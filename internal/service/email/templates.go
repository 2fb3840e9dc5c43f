package email

const leadNotificationTemplate = `
<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; }
  .container { max-width: 600px; margin: 0 auto; padding: 20px; }
  .header { background: {{.AccentColor}}; color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
  .content { background: #f9fafb; padding: 30px; border-radius: 0 0 10px 10px; }
  .lead-info { background: white; padding: 20px; border-radius: 8px; margin: 20px 0; }
  .info-row { margin-bottom: 12px; }
  .label { font-weight: 600; display: inline-block; min-width: 120px; }
</style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1 style="margin: 0;">New Lead!</h1>
      <p style="margin: 10px 0 0 0;">{{.BusinessName}}</p>
    </div>
    <div class="content">
      <div class="lead-info">
        <h2 style="margin-top: 0;">Contact Information</h2>
        <div class="info-row"><span class="label">Name:</span> <strong>{{.Name}}</strong></div>
        <div class="info-row"><span class="label">Email:</span> <a href="mailto:{{.Email}}">{{.Email}}</a></div>
        {{if .Phone}}<div class="info-row"><span class="label">Phone:</span> <a href="tel:{{.Phone}}">{{.Phone}}</a></div>{{end}}
      </div>
      <div class="lead-info">
        <h2 style="margin-top: 0;">Event Details</h2>
        {{if .EventType}}<div class="info-row"><span class="label">Event Type:</span> <strong>{{.EventType}}</strong></div>{{end}}
        {{if .EventDate}}<div class="info-row"><span class="label">Date:</span> {{.EventDate}}</div>{{end}}
        {{if .Location}}<div class="info-row"><span class="label">Location:</span> {{.Location}}</div>{{end}}
        {{if .CoverageRange}}<div class="info-row"><span class="label">Coverage:</span> {{.CoverageRange}}</div>{{end}}
        {{if .AdditionalNotes}}<div class="info-row"><span class="label">Notes:</span> {{.AdditionalNotes}}</div>{{end}}
      </div>
      <p style="font-weight: 600;">Respond within an hour to maximize your booking rate.</p>
    </div>
  </div>
</body>
</html>
`

const adminNewClientTemplate = `
<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; }
  .container { max-width: 600px; margin: 0 auto; padding: 20px; }
  .info-row { margin-bottom: 10px; }
  .label { font-weight: 600; display: inline-block; min-width: 140px; }
</style>
</head>
<body>
  <div class="container">
    <h1>New client onboarded</h1>
    <div class="info-row"><span class="label">Business:</span> {{.BusinessName}}</div>
    <div class="info-row"><span class="label">Website:</span> {{.WebsiteURL}}</div>
    <div class="info-row"><span class="label">Email:</span> {{.NotificationEmail}}</div>
    <div class="info-row"><span class="label">Phone:</span> {{.PhoneNumber}}</div>
    {{if .ServiceArea}}<div class="info-row"><span class="label">Service area:</span> {{.ServiceArea}}</div>{{end}}
    {{if .StartingPrice}}<div class="info-row"><span class="label">Starting price:</span> {{.StartingPrice}}</div>{{end}}
    <div class="info-row"><span class="label">Client token:</span> {{.ClientToken}}</div>
  </div>
</body>
</html>
`
