package mailer

import "html/template"

var catalogConfirmationTmpl = template.Must(template.New("catalog_confirmation").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; color: #333;">
  <div style="text-align: center; padding: 20px 0;"><!--logo--></div>
  <h2>Hello {{.Name}},</h2>
  <p>Thank you for your interest in {{.Site}}. Here are the product catalogs you requested:</p>
  <table style="width: 100%; border-collapse: collapse;">
    {{range .Items}}
    <tr>
      <td style="padding: 10px; border-bottom: 1px solid #eee;">
        <strong>{{.ProductName}}</strong><br />
        <small>{{.SolutionTitle}} / {{.SeriesName}}</small>
      </td>
      <td style="padding: 10px; border-bottom: 1px solid #eee; text-align: right;">
        {{if .DocumentUrl}}<a href="{{.DocumentUrl}}" style="color: #1e40af;">Download PDF</a>{{else}}<span style="color: #999;">Catalog not available</span>{{end}}
      </td>
    </tr>
    {{end}}
  </table>
  <p>Our team will follow up shortly if you need any further assistance.</p>
  <p style="color: #666; font-size: 12px;">{{.Site}}</p>
</div>`))

var catalogAdminTmpl = template.Must(template.New("catalog_admin_notice").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>New Catalog Request</h2>
  <p><strong>Request:</strong> {{.RequestId}}</p>
  <p><strong>Name:</strong> {{.Contact.Name}}</p>
  <p><strong>Email:</strong> {{.Contact.Email}}</p>
  <p><strong>Company:</strong> {{if .Contact.Company}}{{.Contact.Company}}{{else}}N/A{{end}}</p>
  <h3>Requested products ({{.Count}})</h3>
  <ul>
    {{range .Items}}<li>{{.ProductName}} ({{.SolutionTitle}} / {{.SeriesName}}){{if .DocumentUrl}} - <a href="{{.DocumentUrl}}">PDF</a>{{end}}</li>{{end}}
  </ul>
</div>`))

var inquiryAdminTmpl = template.Must(template.New("inquiry_notice").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>New Website Inquiry</h2>
  <p><strong>Website:</strong> {{.Inquiry.Website}}</p>
  <p><strong>Name:</strong> {{.Inquiry.FullName}}</p>
  <p><strong>Company:</strong> {{.Company}}</p>
  <p><strong>Email:</strong> {{.Inquiry.Email}}</p>
  <p><strong>Phone:</strong> {{.Inquiry.Phone}}</p>
  <p><strong>Subject:</strong> {{.Inquiry.Subject}}</p>
  <p><strong>Message:</strong></p>
  <p style="white-space: pre-wrap;">{{.Message}}</p>
</div>`))

var inquiryReplyTmpl = template.Must(template.New("inquiry_auto_reply").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; color: #333;">
  <div style="text-align: center; padding: 20px 0;"><!--logo--></div>
  <p>Dear {{.Name}},</p>
  <p>Thank you for reaching out to {{.Site}}. We have received your message and a member of our team will get back to you as soon as possible.</p>
  <p>Best regards,<br />{{.Site}}</p>
</div>`))

var jobApplicationTmpl = template.Must(template.New("job_application").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>New Job Application</h2>
  <p><strong>Position:</strong> {{.App.JobTitle}}{{if .App.JobId}} ({{.App.JobId}}){{end}}</p>
  <p><strong>Name:</strong> {{.App.Name}}</p>
  <p><strong>Email:</strong> {{.App.Email}}</p>
  <p><strong>Phone:</strong> {{.Phone}}</p>
  <p><strong>LinkedIn:</strong> {{.LinkedIn}}</p>
  <p><strong>Message:</strong></p>
  <p>{{range .Lines}}{{.}}<br />{{end}}</p>
</div>`))
